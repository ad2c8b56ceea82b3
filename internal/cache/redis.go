package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/oggyb/noor-names/internal/config"
	"github.com/redis/go-redis/v9"
)

// CounterTTL is how long a favorite counter stays cached without access.
const CounterTTL = time.Hour

// ErrMiss is returned by Get-style helpers when the key does not exist.
var ErrMiss = errors.New("cache miss")

type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.Client.Close()
}

func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.Client.Set(ctx, key, value, ttl).Err()
}

// Get returns ErrMiss when the key is absent.
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrMiss
	}
	return val, err
}

// Take reads and deletes a key in one round trip. Used for single-use tokens.
func (c *RedisCache) Take(ctx context.Context, key string) (string, error) {
	val, err := c.Client.GetDel(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrMiss
	}
	return val, err
}

func (c *RedisCache) Del(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}

// Exists reports whether key is present without touching its TTL.
func (c *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	n, err := c.Client.Exists(ctx, key).Result()
	return n > 0, err
}

func (c *RedisCache) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return c.Client.Expire(ctx, key, ttl).Err()
}

func (c *RedisCache) KeyForSession(token string) string {
	return "session:" + token
}

func (c *RedisCache) KeyForConfirmation(token string) string {
	return "confirm:" + token
}

// KeyForFavoriteCount generates the Redis key for how many users favorited a name.
func (c *RedisCache) KeyForFavoriteCount(englishName string) string {
	return fmt.Sprintf("favorites:count:%s", englishName)
}

// adjustIfCached runs atomically so a counter that expires mid-update is
// never recreated from a single delta.
var adjustIfCached = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
	redis.call('INCRBY', KEYS[1], ARGV[1])
	redis.call('EXPIRE', KEYS[1], ARGV[2])
	return 1
end
return 0
`)

// AdjustFavoriteCount moves a cached counter by delta, but only when the
// counter is already cached; otherwise the next read rebuilds it from the DB.
func (c *RedisCache) AdjustFavoriteCount(ctx context.Context, englishName string, delta int64) error {
	key := c.KeyForFavoriteCount(englishName)
	return adjustIfCached.Run(ctx, c.Client, []string{key}, delta, int64(CounterTTL/time.Second)).Err()
}

func (c *RedisCache) SetFavoriteCount(ctx context.Context, englishName string, count int64) error {
	// Always refresh TTL when updating
	return c.Client.Set(ctx, c.KeyForFavoriteCount(englishName), count, CounterTTL).Err()
}

// GetFavoriteCount returns ErrMiss when the counter is not cached.
func (c *RedisCache) GetFavoriteCount(ctx context.Context, englishName string) (int64, error) {
	key := c.KeyForFavoriteCount(englishName)
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrMiss
	} else if err != nil {
		return 0, err
	}
	// refresh TTL on access
	_ = c.Client.Expire(ctx, key, CounterTTL).Err()
	return strconv.ParseInt(val, 10, 64)
}
