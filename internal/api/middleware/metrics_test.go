package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pacohlim/showroom-reservation/pkg/metrics"
)

func TestMetricsMiddleware_RecordsRouteTemplate(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWith("showroom-test", reg)

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m, "showroom-test"))
	r.HandleFunc("/api/times", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	// Query string не должен попадать в метку path
	req := httptest.NewRequest(http.MethodGet, "/api/times?date=2025-03-15", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	expected := `
# HELP http_requests_total Total number of handled HTTP requests
# TYPE http_requests_total counter
http_requests_total{method="GET",path="/api/times",service="showroom-test",status="200"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "http_requests_total"))
}

func TestMetricsMiddleware_RecordsErrorStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWith("showroom-test", reg)

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m, "showroom-test"))
	r.HandleFunc("/api/reserve", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/reserve", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)

	expected := `
# HELP http_requests_total Total number of handled HTTP requests
# TYPE http_requests_total counter
http_requests_total{method="POST",path="/api/reserve",service="showroom-test",status="409"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "http_requests_total"))
}
