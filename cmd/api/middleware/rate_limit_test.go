package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiterBlocksAfterMax(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute)
	ip := "203.0.113.10"

	assert.True(t, limiter.Allow(ip))
	assert.True(t, limiter.Allow(ip))
	assert.False(t, limiter.Allow(ip))
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(1, time.Minute)
	limiter.now = func() time.Time { return now }
	ip := "203.0.113.20"

	assert.True(t, limiter.Allow(ip))
	assert.False(t, limiter.Allow(ip))

	now = now.Add(time.Minute + time.Second)
	assert.True(t, limiter.Allow(ip))
}

func TestRateLimiterIsPerIP(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)

	assert.True(t, limiter.Allow("203.0.113.30"))
	assert.True(t, limiter.Allow("203.0.113.31"))
	assert.False(t, limiter.Allow("203.0.113.30"))
}

func TestRateLimiterDisabled(t *testing.T) {
	limiter := NewRateLimiter(0, time.Minute)
	for i := 0; i < 10; i++ {
		assert.True(t, limiter.Allow("203.0.113.40"))
	}

	var nilLimiter *RateLimiter
	assert.True(t, nilLimiter.Allow("203.0.113.40"))
}

func TestRateLimiterDropsExpiredIPsWhenFull(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(5, time.Minute)
	limiter.maxIPs = 2
	limiter.now = func() time.Time { return now }

	limiter.Allow("203.0.113.50")
	limiter.Allow("203.0.113.51")
	now = now.Add(2 * time.Minute)
	limiter.Allow("203.0.113.52")

	assert.Len(t, limiter.hits, 1)
	assert.Contains(t, limiter.hits, "203.0.113.52")
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/messages", RateLimit(NewRateLimiter(1, time.Minute)), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/api/messages", nil))
	assert.Equal(t, http.StatusCreated, first.Code)

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/api/messages", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.JSONEq(t, `{"success":false,"message":"Too many requests"}`, second.Body.String())
}
