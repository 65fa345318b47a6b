package ratelimit

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pratyaksh/internal/platform/metrics"
	"pratyaksh/pkg/requestcontext"
)

func newRequest(ip string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/regional/coverage", nil)
	return req.WithContext(requestcontext.WithClientIP(req.Context(), ip))
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("allows within budget and sets headers", func(t *testing.T) {
		mw := New(NewMemoryStore(), 2, time.Minute, logger)
		rec := httptest.NewRecorder()

		mw.Handler(okHandler).ServeHTTP(rec, newRequest("10.0.0.1"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))
	})

	t.Run("rejects over budget with 429", func(t *testing.T) {
		m := metrics.New()
		mw := New(NewMemoryStore(), 1, time.Minute, logger, WithMetrics(m))
		h := mw.Handler(okHandler)

		h.ServeHTTP(httptest.NewRecorder(), newRequest("10.0.0.2"))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, newRequest("10.0.0.2"))

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("Retry-After"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "rate_limited", body["error"])
		assert.Equal(t, 1.0, testutil.ToFloat64(m.RateLimited))
	})

	t.Run("budgets are per IP", func(t *testing.T) {
		mw := New(NewMemoryStore(), 1, time.Minute, logger)
		h := mw.Handler(okHandler)

		h.ServeHTTP(httptest.NewRecorder(), newRequest("10.0.0.3"))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, newRequest("10.0.0.4"))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("disabled passes everything", func(t *testing.T) {
		mw := New(NewMemoryStore(), 1, time.Minute, logger, WithDisabled(true))
		h := mw.Handler(okHandler)

		for range 3 {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, newRequest("10.0.0.5"))
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("store error fails open", func(t *testing.T) {
		mw := New(&flakyStore{err: errors.New("down")}, 1, time.Minute, logger)
		rec := httptest.NewRecorder()

		mw.Handler(okHandler).ServeHTTP(rec, newRequest("10.0.0.6"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
	})
}

func TestKey(t *testing.T) {
	assert.Equal(t, "pcs:ratelimit:ip:10.1.2.3", Key("10.1.2.3"))
}
