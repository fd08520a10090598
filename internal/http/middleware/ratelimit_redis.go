package middleware

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisKeyPrefix separates limiter counters from anything else sharing
// the Redis instance.
const redisKeyPrefix = "rl:"

// countScript bumps the window counter for a key, stamping the expiry
// on first use, and returns the running count.
const countScript = `
local hits = redis.call("INCR", KEYS[1])
if hits == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return hits
`

// RedisLimiter shares rate-limit windows across instances. Fails open:
// a Redis error never blocks a request.
type RedisLimiter struct {
	client *redis.Client
	script *redis.Script
}

func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	if client == nil {
		return nil
	}
	return &RedisLimiter{client: client, script: redis.NewScript(countScript)}
}

func (l *RedisLimiter) Allow(key string, limit int, window time.Duration) bool {
	if l == nil || l.client == nil {
		return true
	}
	if key == "" || limit <= 0 || window <= 0 {
		return true
	}
	ttl := window.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}
	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()
	hits, err := l.script.Run(ctx, l.client, []string{redisKeyPrefix + key}, ttl).Int64()
	if err != nil {
		return true
	}
	return hits <= int64(limit)
}
