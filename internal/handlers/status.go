package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-country-exchange/internal/logger"
	"github.com/sbilibin2017/gw-country-exchange/internal/models"
)

//go:generate mockgen -source=status.go -destination=status_mock.go -package=handlers

// StatusReporter defines the interface that the service must implement.
type StatusReporter interface {
	Status(ctx context.Context) (models.Status, error)
}

// NewStatusHandler returns an HTTP handler reporting store size and freshness.
// @Summary Status
// @Description Returns the number of stored countries and the last refresh time, null before the first refresh
// @Tags status
// @Produce json
// @Success 200 {object} models.Status
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /status [get]
// @Router /countries/status [get]
func NewStatusHandler(svc StatusReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		status, err := svc.Status(ctx)
		if err != nil {
			logger.FromContext(ctx).Errorw("failed to get status", "error", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, status)
	}
}
