package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-country-exchange/internal/logger"
	"github.com/sbilibin2017/gw-country-exchange/internal/models"
	"github.com/sbilibin2017/gw-country-exchange/internal/repositories"
	"github.com/sbilibin2017/gw-country-exchange/internal/services"
)

//go:generate mockgen -source=rate.go -destination=rate_mock.go -package=handlers

// RateGetter defines the interface that the rates cache must implement.
type RateGetter interface {
	GetRate(ctx context.Context, base, currency string) (float64, error)
}

// NewGetRateHandler returns an HTTP handler reading one rate from the snapshot
// cached by the last refresh. A nil cache answers 404 for every code.
// @Summary Get cached exchange rate
// @Description Returns the USD rate of a currency as fetched by the last successful refresh
// @Tags rates
// @Produce json
// @Param code path string true "Currency code, e.g. EUR"
// @Success 200 {object} models.RateResponse
// @Failure 404 {object} models.ErrorResponse "Rate not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /rates/{code} [get]
func NewGetRateHandler(cache RateGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		code := strings.ToUpper(strings.TrimSpace(pathParam(r, "code")))

		if cache == nil || code == "" {
			writeError(w, http.StatusNotFound, "Rate not found")
			return
		}

		rate, err := cache.GetRate(ctx, services.RatesBase, code)
		if errors.Is(err, repositories.ErrRateNotCached) {
			writeError(w, http.StatusNotFound, "Rate not found")
			return
		}
		if err != nil {
			logger.FromContext(ctx).Errorw("failed to read cached rate", "code", code, "error", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, models.RateResponse{CurrencyCode: code, Rate: rate})
	}
}
