package handlers

import (
	"net/http"
	"os"

	"github.com/sbilibin2017/gw-country-exchange/internal/logger"
)

// NewSummaryImageHandler returns an HTTP handler serving the summary image at path.
// @Summary Summary image
// @Description Returns the PNG generated by the last successful refresh
// @Tags countries
// @Produce png
// @Success 200 {file} binary
// @Failure 404 {object} models.ErrorResponse "Summary image not found"
// @Router /countries/image [get]
func NewSummaryImageHandler(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			if err != nil && !os.IsNotExist(err) {
				logger.FromContext(r.Context()).Errorw("failed to stat summary image", "path", path, "error", err)
			}
			writeError(w, http.StatusNotFound, "Summary image not found")
			return
		}

		w.Header().Set("Content-Type", "image/png")
		http.ServeFile(w, r, path)
	}
}
