package slogx_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aussiebroadwan/bloggr/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestBuildLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := slogx.Build(slogx.Config{Service: "bloggr", Version: "test", Env: "test", Level: "warn", Writer: &buf})

	logger.Info("dropped")
	logger.Warn("kept", "k", "v")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	require.Equal(t, "kept", lines[0]["msg"])
	require.Equal(t, "bloggr", lines[0]["service"])
	require.Equal(t, "v", lines[0]["k"])
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := slogx.Build(slogx.Config{Service: "bloggr", Format: "text", Writer: &buf})
	logger.Info("hello")
	require.Contains(t, buf.String(), "msg=hello")
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	require.NotNil(t, slogx.FromContext(context.Background()))
}

func TestHTTPMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slogx.Build(slogx.Config{Service: "bloggr", Writer: &buf})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /blogs/{id}", func(w http.ResponseWriter, r *http.Request) {
		slogx.FromContext(r.Context()).Info("inside")
		w.WriteHeader(http.StatusTeapot)
	})
	h := slogx.HTTPMiddleware(logger)(mux)

	t.Run("propagates request id and route", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/blogs/42", nil)
		req.Header.Set("X-Request-ID", "req-1")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusTeapot, rec.Code)
		require.Equal(t, "req-1", rec.Header().Get("X-Request-ID"))

		lines := decodeLines(t, &buf)
		require.Len(t, lines, 2)
		require.Equal(t, "inside", lines[0]["msg"])
		require.Equal(t, "req-1", lines[0]["req_id"])
		require.Equal(t, "http_request", lines[1]["msg"])
		require.Equal(t, "GET /blogs/{id}", lines[1]["route"])
		require.EqualValues(t, http.StatusTeapot, lines[1]["status"])
	})

	t.Run("generates request id and marks unmatched routes", func(t *testing.T) {
		buf.Reset()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

		require.Equal(t, http.StatusNotFound, rec.Code)
		require.NotEmpty(t, rec.Header().Get("X-Request-ID"))

		lines := decodeLines(t, &buf)
		require.Equal(t, "unmatched", lines[len(lines)-1]["route"])
	})
}

func TestContextLoggerAccumulatesAttrs(t *testing.T) {
	var buf bytes.Buffer
	base := slogx.Build(slogx.Config{Service: "bloggr", Level: "info", Writer: &buf})

	ctx := slogx.WithContext(context.Background(), base)
	ctx = slogx.WithRequestID(ctx, "req-1")
	ctx = slogx.WithUser(ctx, "user-1")
	slogx.FromContext(ctx).Info("hello")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	require.Equal(t, "req-1", lines[0]["req_id"])
	require.Equal(t, "user-1", lines[0]["user_id"])
}
