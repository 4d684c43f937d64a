package middleware

import (
	"sync"
	"time"

	"go-attendance/internal/shared/apperror"
	"go-attendance/internal/shared/clock"
	"go-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long an unused key keeps its limiter. A limiter idle
// that long has refilled its bucket, so dropping it loses no state.
const limiterIdleTTL = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type KeyedRateLimiter struct {
	limiters  map[string]*limiterEntry
	mu        sync.Mutex
	r         rate.Limit // requests per second
	b         int        // burst
	idleTTL   time.Duration
	lastSweep time.Time
	clock     clock.Clock
}

func NewKeyedRateLimiter(r rate.Limit, b int) *KeyedRateLimiter {
	return NewKeyedRateLimiterWithClock(r, b, limiterIdleTTL, clock.System())
}

func NewKeyedRateLimiterWithClock(r rate.Limit, b int, idleTTL time.Duration, clk clock.Clock) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		limiters:  make(map[string]*limiterEntry),
		r:         r,
		b:         b,
		idleTTL:   idleTTL,
		lastSweep: clk.Now(),
		clock:     clk,
	}
}

// GetLimiter returns the limiter for key. Keys idle for idleTTL are evicted
// at most once per idleTTL, on the calling goroutine.
func (k *KeyedRateLimiter) GetLimiter(key string) *rate.Limiter {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.clock.Now()
	if now.Sub(k.lastSweep) >= k.idleTTL {
		for id, e := range k.limiters {
			if now.Sub(e.lastSeen) >= k.idleTTL {
				delete(k.limiters, id)
			}
		}
		k.lastSweep = now
	}

	e, exists := k.limiters[key]
	if !exists {
		e = &limiterEntry{limiter: rate.NewLimiter(k.r, k.b)}
		k.limiters[key] = e
	}
	e.lastSeen = now

	return e.limiter
}

// Len reports how many keys currently hold a limiter.
func (k *KeyedRateLimiter) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.limiters)
}

func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			response.AbortWithError(c, apperror.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}

// RateLimitByUser keys on the authenticated user; anonymous requests pass.
func RateLimitByUser(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.Next()
			return
		}
		if !limiter.GetLimiter(userID).Allow() {
			response.AbortWithError(c, apperror.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}

// RedisRateLimit is a fixed-window counter shared by every API replica.
// The window starts on the first hit. Redis failures let the request through.
func RedisRateLimit(rdb *redis.Client, name string, limit int64, window time.Duration) gin.HandlerFunc {
	logger := zap.L().Named("middleware.ratelimit")
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := "rl:" + name + ":" + c.ClientIP()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			logger.Warn("rate limit counter unavailable", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}
		if count == 1 {
			if err := rdb.Expire(ctx, key, window).Err(); err != nil {
				logger.Warn("rate limit expire failed", zap.String("key", key), zap.Error(err))
			}
		}

		if count > limit {
			response.AbortWithError(c, apperror.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}
