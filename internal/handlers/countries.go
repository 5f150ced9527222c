package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-country-exchange/internal/logger"
	"github.com/sbilibin2017/gw-country-exchange/internal/models"
)

//go:generate mockgen -source=countries.go -destination=countries_mock.go -package=handlers

// CountryLister defines the interface that the service must implement.
type CountryLister interface {
	List(ctx context.Context, filter models.CountryFilter) ([]models.Country, error)
}

// NewListCountriesHandler returns an HTTP handler listing stored countries.
// @Summary List countries
// @Description Returns stored countries. region and currency match exactly and combine with AND.
// @Tags countries
// @Produce json
// @Param region query string false "Region, e.g. Africa"
// @Param currency query string false "Currency code, e.g. NGN"
// @Param sort query string false "gdp_desc or gdp_asc"
// @Success 200 {array} models.Country
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /countries [get]
func NewListCountriesHandler(svc CountryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		q := r.URL.Query()

		filter := models.CountryFilter{
			Region:   q.Get("region"),
			Currency: q.Get("currency"),
			Sort:     q.Get("sort"),
		}

		countries, err := svc.List(ctx, filter)
		if err != nil {
			logger.FromContext(ctx).Errorw("failed to list countries", "filter", filter, "error", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}
		if countries == nil {
			countries = []models.Country{}
		}

		writeJSON(w, http.StatusOK, countries)
	}
}
