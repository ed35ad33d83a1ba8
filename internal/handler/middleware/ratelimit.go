package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"interview-availability/internal/handler/httperr"
	"interview-availability/internal/pkg/config"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

var errRateLimited = errors.New("rate limit exceeded")

// RateLimiter keeps one token bucket per client IP; the least recently seen
// clients are evicted once MaxClients is reached.
type RateLimiter struct {
	limiters *lru.Cache[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
	mu       sync.Mutex
}

func NewRateLimiter(cfg config.RateLimitConfig) (*RateLimiter, error) {
	limiters, err := lru.New[string, *rate.Limiter](cfg.MaxClients)
	if err != nil {
		return nil, err
	}
	return &RateLimiter{
		limiters: limiters,
		limit:    rate.Limit(cfg.RequestsPerSecond),
		burst:    cfg.Burst,
	}, nil
}

func (rl *RateLimiter) limiterFor(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if limiter, ok := rl.limiters.Get(key); ok {
		return limiter
	}
	limiter := rate.NewLimiter(rl.limit, rl.burst)
	rl.limiters.Add(key, limiter)
	return limiter
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !rl.limiterFor(ip).Allow() {
			slog.Warn("rate limit exceeded", "client_ip", ip, "path", c.Request.URL.Path)
			httperr.AbortWithKind(c, http.StatusTooManyRequests, httperr.KindRateLimited, errRateLimited, "Too many requests")
			return
		}
		c.Next()
	}
}
