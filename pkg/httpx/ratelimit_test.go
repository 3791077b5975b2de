package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/introprep/assay/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(t *testing.T, h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitAllowsWithinBudget(t *testing.T) {
	t.Parallel()

	h := httpx.RateLimitByIP(httpx.RateLimitConfig{
		RequestsPerWindow: 3,
		Window:            time.Minute,
		Burst:             3,
	})(okHandler())

	for i := 0; i < 3; i++ {
		rec := doRequest(t, h, "10.0.0.1:1234")
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimitRejectsOverBudget(t *testing.T) {
	t.Parallel()

	h := httpx.RateLimitByIP(httpx.RateLimitConfig{
		RequestsPerWindow: 2,
		Window:            time.Minute,
		Burst:             2,
	})(okHandler())

	doRequest(t, h, "10.0.0.2:1234")
	doRequest(t, h, "10.0.0.2:1234")

	rec := doRequest(t, h, "10.0.0.2:1234")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRateLimitIsPerIP(t *testing.T) {
	t.Parallel()

	h := httpx.RateLimitByIP(httpx.RateLimitConfig{
		RequestsPerWindow: 1,
		Window:            time.Minute,
		Burst:             1,
	})(okHandler())

	require.Equal(t, http.StatusOK, doRequest(t, h, "10.0.0.3:1234").Code)
	require.Equal(t, http.StatusTooManyRequests, doRequest(t, h, "10.0.0.3:1234").Code)

	// A different client is unaffected.
	require.Equal(t, http.StatusOK, doRequest(t, h, "10.0.0.4:1234").Code)
}

func TestIPKeyExtractorPrefersForwardedFor(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "127.0.0.1:9999"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	require.Equal(t, "203.0.113.7", httpx.IPKeyExtractor(req))

	req.Header.Del("X-Forwarded-For")
	req.Header.Set("X-Real-IP", "203.0.113.8")
	require.Equal(t, "203.0.113.8", httpx.IPKeyExtractor(req))

	req.Header.Del("X-Real-IP")
	require.Equal(t, "127.0.0.1", httpx.IPKeyExtractor(req))
}
