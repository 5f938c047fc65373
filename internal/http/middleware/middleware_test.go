package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/factory-records/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memoryCounter struct {
	counts  map[string]int64
	expires map[string]time.Duration
	err     error
}

func newMemoryCounter() *memoryCounter {
	return &memoryCounter{counts: map[string]int64{}, expires: map[string]time.Duration{}}
}

func (m *memoryCounter) Incr(ctx context.Context, key string) *redis.IntCmd {
	if m.err != nil {
		return redis.NewIntResult(0, m.err)
	}
	m.counts[key]++
	return redis.NewIntResult(m.counts[key], nil)
}

func (m *memoryCounter) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	m.expires[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func TestRateLimit(t *testing.T) {
	store := newMemoryCounter()
	router := gin.New()
	router.Use(RateLimit(store, "api", 2, time.Minute, func(*gin.Context) string { return "1.2.3.4" }, zerolog.Nop()))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, rec.Code)
		if rec.Code == http.StatusTooManyRequests {
			assert.Equal(t, "60", rec.Header().Get("Retry-After"))
		}
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, time.Minute, store.expires["rl:api:1.2.3.4"])
}

func TestRateLimitFailsOpen(t *testing.T) {
	store := newMemoryCounter()
	store.err = errors.New("connection refused")
	router := gin.New()
	router.Use(RateLimit(store, "api", 1, time.Minute, ClientIPKey, zerolog.Nop()))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

type stubParser struct{}

func (stubParser) Parse(token string) (model.Principal, error) {
	if token != "good" {
		return model.Principal{}, errors.New("bad token")
	}
	return model.Principal{Subject: "user-1"}, nil
}

func TestAuth(t *testing.T) {
	router := gin.New()
	router.Use(Auth(stubParser{}))
	router.GET("/", func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		require.True(t, ok)
		c.String(http.StatusOK, principal.Subject)
	})

	cases := []struct {
		header string
		code   int
	}{
		{header: "", code: http.StatusUnauthorized},
		{header: "Basic abc", code: http.StatusUnauthorized},
		{header: "Bearer bad", code: http.StatusUnauthorized},
		{header: "Bearer good", code: http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, tc.code, rec.Code, tc.header)
	}
}

func TestRequestIDAndLogger(t *testing.T) {
	var buf bytes.Buffer
	router := gin.New()
	router.Use(RequestID(), Logger(zerolog.New(&buf)))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	assert.Contains(t, buf.String(), `"request_id":"abc-123"`)
	assert.Contains(t, buf.String(), `"status":200`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	assert.NotContains(t, buf.String(), `"subject"`)
}

func TestLoggerRecordsSubject(t *testing.T) {
	var buf bytes.Buffer
	router := gin.New()
	router.Use(Logger(zerolog.New(&buf)), Auth(stubParser{}))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	router.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"subject":"user-1"`)
}
