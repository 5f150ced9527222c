package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-country-exchange/internal/logger"
	"github.com/sbilibin2017/gw-country-exchange/internal/models"
	"github.com/sbilibin2017/gw-country-exchange/internal/services"
)

//go:generate mockgen -source=country.go -destination=country_mock.go -package=handlers

// CountryGetter defines the interface that the service must implement.
type CountryGetter interface {
	GetByName(ctx context.Context, name string) (*models.Country, error)
}

// CountryDeleter defines the interface that the service must implement.
type CountryDeleter interface {
	DeleteByName(ctx context.Context, name string) error
}

// CountrySaver defines the interface that the service must implement.
type CountrySaver interface {
	Save(ctx context.Context, input models.CountryInput) error
}

// NewGetCountryHandler returns an HTTP handler fetching one country by name.
// @Summary Get country
// @Description Looks a country up by name, ignoring case
// @Tags countries
// @Produce json
// @Param name path string true "Country name"
// @Success 200 {object} models.Country
// @Failure 404 {object} models.ErrorResponse "Country not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /countries/{name} [get]
func NewGetCountryHandler(svc CountryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		name := pathParam(r, "name")

		country, err := svc.GetByName(ctx, name)
		if errors.Is(err, services.ErrCountryNotFound) {
			writeError(w, http.StatusNotFound, msgCountryNotFound)
			return
		}
		if err != nil {
			logger.FromContext(ctx).Errorw("failed to get country", "name", name, "error", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, country)
	}
}

// NewDeleteCountryHandler returns an HTTP handler deleting one country by name.
// @Summary Delete country
// @Description Deletes a country by name, ignoring case
// @Tags countries
// @Produce json
// @Param name path string true "Country name"
// @Success 200 {object} models.MessageResponse "Country deleted successfully"
// @Failure 404 {object} models.ErrorResponse "Country not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /countries/{name} [delete]
func NewDeleteCountryHandler(svc CountryDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		name := pathParam(r, "name")

		err := svc.DeleteByName(ctx, name)
		if errors.Is(err, services.ErrCountryNotFound) {
			writeError(w, http.StatusNotFound, msgCountryNotFound)
			return
		}
		if err != nil {
			logger.FromContext(ctx).Errorw("failed to delete country", "name", name, "error", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		logger.FromContext(ctx).Infow("country deleted", "name", name)
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Country deleted successfully"})
	}
}

// NewSaveCountryHandler returns an HTTP handler inserting or replacing a country by name.
// @Summary Add or update country
// @Description Validates name, population and currency_code, then upserts the country by name
// @Tags countries
// @Accept json
// @Produce json
// @Param request body models.CountryInput true "Country"
// @Success 201 {object} models.MessageResponse "Country added or updated successfully"
// @Failure 400 {object} models.ErrorResponse "Validation failed"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /countries [post]
func NewSaveCountryHandler(svc CountrySaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var input models.CountryInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			logger.FromContext(ctx).Warnw("failed to decode country", "error", err)
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		err := svc.Save(ctx, input)
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
				Error:   msgValidationFailed,
				Details: verr.Details,
			})
			return
		}
		if err != nil {
			logger.FromContext(ctx).Errorw("failed to save country", "error", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusCreated, models.MessageResponse{Message: "Country added or updated successfully"})
	}
}
