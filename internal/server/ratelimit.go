package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"sealed-auction/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	visitorCleanupInterval = 5 * time.Minute
	visitorIdleTimeout     = 10 * time.Minute
)

var errRateLimited = errors.New("rate limit exceeded")

// RateLimiter keeps one token bucket per client IP
type RateLimiter struct {
	visitors map[string]*visitor
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	now      utils.Clock
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a limiter allowing rps requests per second per IP with
// the given burst. Idle visitors are evicted until ctx is cancelled.
func NewRateLimiter(ctx context.Context, rps float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
	}
	go rl.cleanupVisitors(ctx)
	return rl
}

func (rl *RateLimiter) getVisitor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = rl.now()
	return v.limiter
}

func (rl *RateLimiter) cleanupVisitors(ctx context.Context) {
	ticker := time.NewTicker(visitorCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.evictIdle()
		}
	}
}

func (rl *RateLimiter) evictIdle() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	evicted := 0
	for ip, v := range rl.visitors {
		if rl.now().Sub(v.lastSeen) > visitorIdleTimeout {
			delete(rl.visitors, ip)
			evicted++
		}
	}
	return evicted
}

// Middleware rejects requests over the per-IP limit with 429
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !rl.getVisitor(ip).Allow() {
			utils.AbortWithJSONError(c, http.StatusTooManyRequests, errRateLimited, "rate limit exceeded, please try again later")
			utils.Warn("rate limit exceeded", map[string]any{"ip": ip, "path": c.Request.URL.Path})
			return
		}
		c.Next()
	}
}
