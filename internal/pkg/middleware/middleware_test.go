package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goinvest/internal/pkg/cache/cachetest"
	"goinvest/internal/pkg/logger"
	"goinvest/internal/pkg/middleware"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func request(h http.Handler, remote string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/investments", nil)
	req.RemoteAddr = remote
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	mem := cachetest.NewMemory()
	h := middleware.RateLimiter(mem, 2, time.Minute, logger.Nop())(okHandler)

	first := request(h, "10.0.0.1:1234")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	second := request(h, "10.0.0.1:1234")
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))

	third := request(h, "10.0.0.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.Contains(t, third.Body.String(), middleware.MsgRateLimited)

	// Outro IP tem sua própria janela.
	assert.Equal(t, http.StatusOK, request(h, "10.0.0.2:1234").Code)
}

func TestRateLimiter_WindowExpires(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	mem := cachetest.NewMemory()
	mem.Now = func() time.Time { return now }
	h := middleware.RateLimiter(mem, 1, time.Minute, logger.Nop())(okHandler)

	assert.Equal(t, http.StatusOK, request(h, "10.0.0.1:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, request(h, "10.0.0.1:1").Code)

	now = now.Add(2 * time.Minute)
	assert.Equal(t, http.StatusOK, request(h, "10.0.0.1:1").Code)
}

func TestRateLimiter_CacheFailureLetsRequestThrough(t *testing.T) {
	mem := cachetest.NewMemory()
	mem.Err = errors.New("connection refused")
	h := middleware.RateLimiter(mem, 1, time.Minute, logger.Nop())(okHandler)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, request(h, "10.0.0.1:1").Code)
	}
}

func TestRequestLogger_LogsStatus(t *testing.T) {
	var buf bytes.Buffer
	h := middleware.RequestLogger(logger.NewWithWriter(&buf, "info"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest(http.MethodDelete, "/api/investments/abc", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "DELETE", entry["method"])
	assert.Equal(t, "/api/investments/abc", entry["path"])
	assert.EqualValues(t, 404, entry["status"])
}
