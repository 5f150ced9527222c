package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/", "/"},
		{"/countries", "/countries"},
		{"/countries/", "/countries"},
		{"/countries/refresh", "/countries/refresh"},
		{"/countries/image", "/countries/image"},
		{"/countries/status", "/countries/status"},
		{"/countries/Nigeria", "/countries/:name"},
		{"/countries/United%20Kingdom", "/countries/:name"},
		{"/rates/EUR", "/rates/:code"},
		{"/status", "/status"},
		{"/swagger/index.html", "/swagger"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalPath(tt.path))
		})
	}
}

func TestInstrumentHandler(t *testing.T) {
	handler := InstrumentHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/countries/:name", "404"))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/countries/Atlantis", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/countries/:name", "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(httpInFlight))
}

func TestRecordRefreshAndHandler(t *testing.T) {
	before := testutil.ToFloat64(refreshRuns.WithLabelValues("success"))
	RecordRefresh("success", 2*time.Second)
	assert.Equal(t, before+1, testutil.ToFloat64(refreshRuns.WithLabelValues("success")))

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.True(t, strings.Contains(body, "country_exchange_refresh_runs_total"))
	assert.True(t, strings.Contains(body, "country_exchange_refresh_duration_seconds"))
}
