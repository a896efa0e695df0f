package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/rueidis"
)

// incrementScript bumps the counter and sets the window expiry in one step.
// A key found without a TTL gets one as well, so a window can never become
// permanent.
var incrementScript = rueidis.NewLuaScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 or redis.call('PTTL', KEYS[1]) < 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return count
`)

// RedisCounter keeps rate limit windows in Redis so several instances share
// one budget per client.
type RedisCounter struct {
	client rueidis.Client
	prefix string
}

func NewRedisCounter(client rueidis.Client, keyPrefix string) *RedisCounter {
	return &RedisCounter{
		client: client,
		prefix: keyPrefix,
	}
}

func (r *RedisCounter) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	return incrementScript.Exec(
		ctx,
		r.client,
		[]string{r.prefix + key},
		[]string{strconv.FormatInt(window.Milliseconds(), 10)},
	).AsInt64()
}
