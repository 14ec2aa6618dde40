package adapter

import (
	"context"
	"errors"
	"time"

	"quizmaster/internal/domain"

	"github.com/redis/go-redis/v9"
)

// setIfNewerScript writes KEYS[1] and its version key KEYS[2] in one step,
// skipping the write when the stored version is not older than ARGV[1].
const setIfNewerScript = `
local current = redis.call('GET', KEYS[2])
if current and current >= ARGV[1] then
	return 0
end
local ttl = tonumber(ARGV[3])
if ttl > 0 then
	redis.call('SET', KEYS[2], ARGV[1], 'PX', ttl)
	redis.call('SET', KEYS[1], ARGV[2], 'PX', ttl)
else
	redis.call('SET', KEYS[2], ARGV[1])
	redis.call('SET', KEYS[1], ARGV[2])
end
return 1
`

// RedisCacheAdapter is the domain.Cache backed by Redis.
type RedisCacheAdapter struct {
	client redis.Cmdable
}

// NewRedisCacheAdapter wraps a connected client.
func NewRedisCacheAdapter(client redis.Cmdable) domain.Cache {
	return &RedisCacheAdapter{client: client}
}

// VersionKey is where SetIfNewer keeps the version of key.
func VersionKey(key string) string {
	return key + ":version"
}

// Get translates redis.Nil to domain.ErrCacheMiss.
func (r *RedisCacheAdapter) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrCacheMiss
	}
	return val, err
}

func (r *RedisCacheAdapter) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

func (r *RedisCacheAdapter) SetIfNewer(ctx context.Context, key, version, value string, expiration time.Duration) (bool, error) {
	stored, err := r.client.Eval(ctx, setIfNewerScript,
		[]string{key, VersionKey(key)},
		version, value, expiration.Milliseconds()).Int64()
	if err != nil {
		return false, err
	}
	return stored == 1, nil
}

// Delete removes key and its version. A missing key is not an error.
func (r *RedisCacheAdapter) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key, VersionKey(key)).Err()
}

func (r *RedisCacheAdapter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
