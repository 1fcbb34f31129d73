package middleware

import (
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/Eursukkul/partywknd/config"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const rateKeyPrefix = "partywknd:rl"

// tokenBucket refills continuously and takes one token atomically.
// Returns {allowed, remaining, retry_after_ms}.
var tokenBucket = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_per_ms = tonumber(ARGV[3])
local ttl_seconds = tonumber(ARGV[4])

local state = redis.call('HMGET', key, 'tokens', 'ts')
local tokens = tonumber(state[1])
local ts = tonumber(state[2])
if tokens == nil or ts == nil then
	tokens = capacity
	ts = now_ms
end

tokens = math.min(capacity, tokens + math.max(0, now_ms - ts) * refill_per_ms)

local allowed = 0
local retry_ms = 0
if tokens >= 1 then
	allowed = 1
	tokens = tokens - 1
else
	retry_ms = math.ceil((1 - tokens) / refill_per_ms)
end

redis.call('HSET', key, 'tokens', tostring(tokens), 'ts', now_ms)
redis.call('EXPIRE', key, ttl_seconds)
return {allowed, math.floor(tokens), retry_ms}
`)

// RateLimit applies a per-client-IP token bucket stored in redis. A nil client
// disables it; redis errors let the request through.
func RateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	refillPerMs := cfg.RefillPerSec / 1000
	ttl := int64(math.Ceil(float64(cfg.Capacity)/cfg.RefillPerSec)) + 1

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := rateKeyPrefix + ":" + c.RealIP()
			vals, err := tokenBucket.Run(c.Request().Context(), rdb, []string{key},
				time.Now().UnixMilli(), cfg.Capacity, refillPerMs, ttl).Int64Slice()
			if err != nil || len(vals) != 3 {
				log.Printf("[RateLimit] redis unavailable for %s: %v", key, err)
				return next(c)
			}

			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Capacity))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(vals[1], 10))
			if vals[0] != 1 {
				secs := int64(math.Ceil(float64(vals[2]) / 1000))
				c.Response().Header().Set("Retry-After", strconv.FormatInt(secs, 10))
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
