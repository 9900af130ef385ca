package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aussiebroadwan/bloggr/internal/bloggr/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestSessionEventNilSafe(t *testing.T) {
	var m *metrics.Metrics
	require.NotPanics(t, func() { m.SessionEvent(metrics.EventLogin) })
}

func TestMiddlewareLabelsByPattern(t *testing.T) {
	m := metrics.New()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /blogs/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	h := m.Middleware(mux)

	for _, path := range []string{"/blogs/1", "/blogs/2", "/nope"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	expected := `
# HELP bloggr_http_requests_total HTTP requests by method, matched route and status code.
# TYPE bloggr_http_requests_total counter
bloggr_http_requests_total{method="GET",route="GET /blogs/{id}",status="404"} 2
bloggr_http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "bloggr_http_requests_total"))
}

func TestHandlerExposesSessionCounters(t *testing.T) {
	m := metrics.New()
	m.SessionEvent(metrics.EventLogin)
	m.SessionEvent(metrics.EventLogin)
	m.SessionEvent(metrics.EventStaleRefreshRejected)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `bloggr_sessions_total{event="login"} 2`)
	require.Contains(t, string(body), `bloggr_sessions_total{event="stale_refresh_rejected"} 1`)
	require.Contains(t, string(body), "go_goroutines")
}
