package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/bloggr/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestParseTrustedProxies(t *testing.T) {
	_, err := httpx.ParseTrustedProxies([]string{"10.0.0.0/8", " 127.0.0.1 ", "", "::1"})
	require.NoError(t, err)

	_, err = httpx.ParseTrustedProxies([]string{"not-an-ip"})
	require.Error(t, err)

	_, err = httpx.ParseTrustedProxies([]string{"10.0.0.0/33"})
	require.Error(t, err)
}

func TestClientIP(t *testing.T) {
	tp, err := httpx.ParseTrustedProxies([]string{"10.0.0.0/8"})
	require.NoError(t, err)

	cases := []struct {
		name   string
		remote string
		xff    string
		xri    string
		want   string
	}{
		{"untrusted peer keeps its own address", "198.51.100.7:4000", "203.0.113.1", "203.0.113.2", "198.51.100.7"},
		{"trusted peer forwards the client", "10.0.0.2:4000", "203.0.113.1", "", "203.0.113.1"},
		{"rightmost untrusted hop wins", "10.0.0.2:4000", "1.1.1.1, 203.0.113.1, 10.0.0.9", "", "203.0.113.1"},
		{"garbled chain falls back to the peer", "10.0.0.2:4000", "203.0.113.1, junk", "", "10.0.0.2"},
		{"all hops trusted uses X-Real-IP", "10.0.0.2:4000", "10.0.0.3", "203.0.113.2", "203.0.113.2"},
		{"no headers uses the peer", "10.0.0.2:4000", "", "", "10.0.0.2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remote
			if tc.xff != "" {
				req.Header.Set("X-Forwarded-For", tc.xff)
			}
			if tc.xri != "" {
				req.Header.Set("X-Real-IP", tc.xri)
			}
			require.Equal(t, tc.want, tp.ClientIP(req))
		})
	}
}

func TestClientIPWithoutTrustedProxies(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "127.0.0.1:4000"
	req.Header.Set("X-Forwarded-For", "203.0.113.1")

	require.Equal(t, "127.0.0.1", httpx.TrustedProxies{}.ClientIP(req))
}
