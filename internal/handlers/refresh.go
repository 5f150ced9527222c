package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-country-exchange/internal/logger"
	"github.com/sbilibin2017/gw-country-exchange/internal/models"
	"github.com/sbilibin2017/gw-country-exchange/internal/services"
)

//go:generate mockgen -source=refresh.go -destination=refresh_mock.go -package=handlers

// CountriesRefresher defines the interface that the service must implement.
type CountriesRefresher interface {
	Refresh(ctx context.Context) (int64, error)
}

// NewRefreshCountriesHandler returns an HTTP handler that reloads every country from the providers.
// @Summary Refresh countries
// @Description Fetches exchange rates and countries, recomputes estimated GDP, stores everything in one transaction and regenerates the summary image
// @Tags countries
// @Produce json
// @Success 200 {object} models.RefreshResponse "Countries refreshed successfully"
// @Failure 503 {object} models.ErrorResponse "External data source unavailable"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /countries/refresh [post]
func NewRefreshCountriesHandler(svc CountriesRefresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		total, err := svc.Refresh(ctx)
		if err != nil {
			var sourceErr *services.ExternalSourceError
			if errors.As(err, &sourceErr) {
				logger.FromContext(ctx).Warnw("external source unavailable", "source", sourceErr.Source, "error", err)
				writeJSON(w, http.StatusServiceUnavailable, models.ErrorResponse{
					Error:   "External data source unavailable",
					Details: "Could not fetch data from " + sourceErr.Source,
				})
				return
			}

			logger.FromContext(ctx).Errorw("failed to refresh countries", "error", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, models.RefreshResponse{
			Message:        "Countries refreshed successfully",
			TotalCountries: total,
		})
	}
}
