package facades

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-country-exchange/internal/logger"
	"github.com/tidwall/gjson"
)

// ExchangeRateHTTPFacade reads USD based exchange rates from an open.er-api.com compatible endpoint.
type ExchangeRateHTTPFacade struct {
	client *http.Client
	url    string
}

// NewExchangeRateHTTPFacade creates a new facade with an HTTP client.
func NewExchangeRateHTTPFacade(client *http.Client, url string) *ExchangeRateHTTPFacade {
	return &ExchangeRateHTTPFacade{client: client, url: url}
}

// GetExchangeRates fetches all exchange rates and returns them as map[currency]rate.
// A body without a rates object yields an empty map.
func (f *ExchangeRateHTTPFacade) GetExchangeRates(ctx context.Context) (map[string]float64, error) {
	body, err := getBody(ctx, f.client, f.url)
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rates", "url", f.url, "error", err)
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		logger.Log.Errorw("invalid exchange rates payload", "url", f.url)
		return nil, fmt.Errorf("invalid JSON from %s", f.url)
	}

	rates := make(map[string]float64)
	gjson.GetBytes(body, "rates").ForEach(func(code, rate gjson.Result) bool {
		if rate.Type == gjson.Number {
			rates[code.String()] = rate.Float()
		}
		return true
	})

	logger.Log.Infow("exchange rates fetched", "url", f.url, "count", len(rates))

	return rates, nil
}
