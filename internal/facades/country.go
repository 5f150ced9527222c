package facades

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-country-exchange/internal/logger"
	"github.com/sbilibin2017/gw-country-exchange/internal/models"
	"github.com/tidwall/gjson"
)

// CountryHTTPFacade reads country records from a restcountries.com v2 compatible endpoint.
type CountryHTTPFacade struct {
	client *http.Client
	url    string
}

// NewCountryHTTPFacade creates a new facade with an HTTP client.
func NewCountryHTTPFacade(client *http.Client, url string) *CountryHTTPFacade {
	return &CountryHTTPFacade{client: client, url: url}
}

// GetCountries fetches the raw country list.
func (f *CountryHTTPFacade) GetCountries(ctx context.Context) ([]models.RawCountry, error) {
	body, err := getBody(ctx, f.client, f.url)
	if err != nil {
		logger.Log.Errorw("failed to fetch countries", "url", f.url, "error", err)
		return nil, err
	}

	doc := gjson.ParseBytes(body)
	if !gjson.ValidBytes(body) || !doc.IsArray() {
		logger.Log.Errorw("invalid countries payload", "url", f.url)
		return nil, fmt.Errorf("expected a JSON array from %s", f.url)
	}

	entries := doc.Array()
	countries := make([]models.RawCountry, 0, len(entries))
	for _, entry := range entries {
		countries = append(countries, parseRawCountry(entry))
	}

	logger.Log.Infow("countries fetched", "url", f.url, "count", len(countries))

	return countries, nil
}

func parseRawCountry(entry gjson.Result) models.RawCountry {
	raw := models.RawCountry{
		Name:    stringField(entry, "name"),
		Capital: stringField(entry, "capital"),
		Region:  stringField(entry, "region"),
		Flag:    stringField(entry, "flag"),
	}

	if pop := entry.Get("population"); pop.Type == gjson.Number {
		raw.Population = pop.Int()
	}

	if currencies := entry.Get("currencies"); currencies.IsArray() {
		for _, c := range currencies.Array() {
			raw.CurrencyCodes = append(raw.CurrencyCodes, stringField(c, "code"))
		}
	}

	return raw
}

func stringField(r gjson.Result, path string) string {
	v := r.Get(path)
	if v.Type != gjson.String {
		return ""
	}
	return v.String()
}
