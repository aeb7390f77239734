package middleware

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ariebrainware/clinic-api/util"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

const (
	defaultRateLimit  = 100
	defaultRateWindow = time.Minute
)

// RateLimitConfig holds configuration for rate limiting. With a nil Client
// the limiter keeps per-IP token buckets in process memory.
type RateLimitConfig struct {
	Limit  int
	Window time.Duration
	Client *redis.Client
	Events *util.EventLogger
}

// RateLimiter allows at most Limit requests per Window for each client IP.
func RateLimiter(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.Limit <= 0 {
		cfg.Limit = defaultRateLimit
	}
	if cfg.Window <= 0 {
		cfg.Window = defaultRateWindow
	}

	var local *IPRateLimiter
	if cfg.Client == nil {
		local = NewIPRateLimiter(rate.Every(refillInterval(cfg.Window, cfg.Limit)), cfg.Limit)
	}

	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		allowed := true
		if local != nil {
			allowed = local.GetLimiter(clientIP).Allow()
		} else {
			var err error
			allowed, err = checkRateLimit(c.Request.Context(), cfg.Client, rateLimitKey(clientIP), cfg.Limit, cfg.Window)
			if err != nil {
				// Redis being unavailable must not take the API down.
				cfg.Events.Log(util.Event{
					Type:      util.EventRateLimitCheckFailed,
					RequestID: GetRequestID(c),
					IP:        clientIP,
					Message:   fmt.Sprintf("Rate limit check failed: %v", err),
				})
				allowed = true
			}
		}

		if !allowed {
			cfg.Events.LogRateLimitExceeded(GetRequestID(c), clientIP, c.Request.URL.Path)
			util.CallTooManyRequests(c, util.APIErrorParams{
				Msg: "Too many requests. Please try again later.",
				Err: fmt.Errorf("rate limit exceeded"),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// refillInterval is the time between two tokens. It never drops to zero,
// which rate.Every would turn into an unlimited rate.
func refillInterval(window time.Duration, limit int) time.Duration {
	interval := window / time.Duration(limit)
	if interval <= 0 {
		return time.Nanosecond
	}
	return interval
}

func rateLimitKey(clientIP string) string {
	return fmt.Sprintf("ratelimit:%s", clientIP)
}

// checkRateLimit counts a request in a fixed window.
// Returns true if allowed, false if rate limit exceeded
func checkRateLimit(ctx context.Context, rdb *redis.Client, key string, limit int, window time.Duration) (bool, error) {
	count, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit: %w", err)
	}
	// the first hit opens the window
	if count == 1 {
		if err := rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}
	return count <= int64(limit), nil
}

// IPRateLimiter keeps one token bucket per client IP. Buckets idle for
// visitorTTL are evicted by the cache janitor.
type IPRateLimiter struct {
	visitors *cache.Cache
	mu       sync.Mutex
	r        rate.Limit
	b        int
}

const visitorTTL = 3 * time.Minute

// NewIPRateLimiter returns a limiter refilling at r with burst b.
func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		visitors: cache.New(visitorTTL, time.Minute),
		r:        r,
		b:        b,
	}
}

// GetLimiter returns the bucket of ip, creating it on first use. Every call
// extends the bucket's lifetime.
func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	if v, ok := i.visitors.Get(ip); ok {
		limiter := v.(*rate.Limiter)
		i.visitors.SetDefault(ip, limiter)
		return limiter
	}
	limiter := rate.NewLimiter(i.r, i.b)
	i.visitors.SetDefault(ip, limiter)
	return limiter
}
