package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-blog/cmd/api/dto"
	"portfolio-blog/internal/logger"
)

// RateLimiter allows max hits per client IP within a sliding window.
// Expired hits are pruned on access; once more than maxIPs addresses are
// tracked, every expired address is dropped.
type RateLimiter struct {
	mu     sync.Mutex
	hits   map[string][]time.Time
	max    int
	maxIPs int
	window time.Duration
	now    func() time.Time
}

func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		hits:   make(map[string][]time.Time),
		max:    max,
		maxIPs: 1024,
		window: window,
		now:    time.Now,
	}
}

// Allow records a hit for ip and reports whether it is within the limit.
// A limiter with max <= 0 allows everything.
func (l *RateLimiter) Allow(ip string) bool {
	if l == nil || l.max <= 0 {
		return true
	}
	now := l.now()
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	kept := prune(l.hits[ip], cutoff)
	if len(kept) >= l.max {
		l.hits[ip] = kept
		return false
	}
	l.hits[ip] = append(kept, now)

	if len(l.hits) > l.maxIPs {
		l.sweepLocked(cutoff)
	}
	return true
}

func (l *RateLimiter) sweepLocked(cutoff time.Time) {
	for ip, hits := range l.hits {
		if kept := prune(hits, cutoff); len(kept) == 0 {
			delete(l.hits, ip)
		} else {
			l.hits[ip] = kept
		}
	}
}

func prune(hits []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for ; i < len(hits); i++ {
		if hits[i].After(cutoff) {
			break
		}
	}
	return hits[i:]
}

// RateLimit answers 429 once the client IP exceeds the limiter.
func RateLimit(l *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !l.Allow(ip) {
			logger.WarnWithFields("rate limit exceeded", logger.Fields{
				"client_ip": ip,
				"path":      c.Request.URL.Path,
			})
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.Response{Success: false, Message: "Too many requests"})
			return
		}
		c.Next()
	}
}
