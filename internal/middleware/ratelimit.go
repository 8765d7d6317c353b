package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/studyplanner-backend/internal/config"
	"github.com/stemsi/studyplanner-backend/internal/response"
)

// Limiter decides whether a client may spend one more request.
type Limiter interface {
	Allow(ctx context.Context, client string) (bool, error)
}

// RateLimit answers 429 once a client exhausts its budget. Store failures are
// logged and the request is let through.
func RateLimit(limiter Limiter, log zerolog.Logger) gin.HandlerFunc {
	l := log.With().Str("component", "rate_limit").Logger()

	return func(c *gin.Context) {
		ok, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			l.Warn().Err(err).Str("client_ip", c.ClientIP()).Msg("rate limit store unavailable, allowing request")
			c.Next()
			return
		}
		if !ok {
			response.AbortFail(c, http.StatusTooManyRequests, response.ErrRateLimitExceeded)
			return
		}
		c.Next()
	}
}

// ─── In-memory token bucket ─────────────────────────────────────────────────

// MemoryLimiter implements a simple per-client token bucket rate limiter.
type MemoryLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     int           // Tokens per interval
	interval time.Duration // Refill interval
	now      func() time.Time
}

type visitor struct {
	tokens   int
	lastSeen time.Time
}

// NewMemoryLimiter creates a MemoryLimiter (e.g., 60 requests per minute).
// Stale clients are evicted until ctx is cancelled.
func NewMemoryLimiter(ctx context.Context, rate int, interval time.Duration) *MemoryLimiter {
	rl := &MemoryLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate,
		interval: interval,
		now:      time.Now,
	}

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rl.cleanup()
			}
		}
	}()

	return rl
}

func (rl *MemoryLimiter) Allow(_ context.Context, client string) (bool, error) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	v, exists := rl.visitors[client]
	if !exists {
		v = &visitor{tokens: rl.rate, lastSeen: now}
		rl.visitors[client] = v
	}

	// Refill tokens based on elapsed time.
	refill := int(now.Sub(v.lastSeen)/rl.interval) * rl.rate
	if refill > 0 {
		v.tokens += refill
		if v.tokens > rl.rate {
			v.tokens = rl.rate
		}
		v.lastSeen = now
	}

	if v.tokens <= 0 {
		return false, nil
	}
	v.tokens--
	return true, nil
}

func (rl *MemoryLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for client, v := range rl.visitors {
		if rl.now().Sub(v.lastSeen) > 3*rl.interval {
			delete(rl.visitors, client)
		}
	}
}

// ─── Redis fixed window ─────────────────────────────────────────────────────

// RedisLimiter counts requests per client in fixed windows shared by every
// API instance.
type RedisLimiter struct {
	rdb      *redis.Client
	rate     int
	interval time.Duration
	now      func() time.Time
}

// NewRedisLimiter creates a RedisLimiter allowing rate requests per interval.
func NewRedisLimiter(rdb *redis.Client, rate int, interval time.Duration) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, rate: rate, interval: interval, now: time.Now}
}

func (rl *RedisLimiter) Allow(ctx context.Context, client string) (bool, error) {
	window := rl.now().UnixNano() / int64(rl.interval)
	key := config.CacheKey.RateLimitKey(client, window)

	pipe := rl.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, rl.interval)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return incr.Val() <= int64(rl.rate), nil
}

