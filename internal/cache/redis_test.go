package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/noor-names/internal/cache"
	"github.com/oggyb/noor-names/internal/config"
)

func setupCache(t *testing.T) (*cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()
	rc := cache.NewRedisCache(cfg)
	t.Cleanup(func() { _ = rc.Close() })
	return rc, mr
}

func TestGetAndTake(t *testing.T) {
	ctx := context.Background()
	rc, _ := setupCache(t)

	_, err := rc.Get(ctx, "missing")
	assert.ErrorIs(t, err, cache.ErrMiss)

	require.NoError(t, rc.Set(ctx, rc.KeyForConfirmation("tok"), "user-1", time.Minute))

	v, err := rc.Take(ctx, rc.KeyForConfirmation("tok"))
	require.NoError(t, err)
	assert.Equal(t, "user-1", v)

	_, err = rc.Take(ctx, rc.KeyForConfirmation("tok"))
	assert.ErrorIs(t, err, cache.ErrMiss)
}

func TestFavoriteCount(t *testing.T) {
	ctx := context.Background()
	rc, mr := setupCache(t)

	_, err := rc.GetFavoriteCount(ctx, "Yusuf")
	assert.ErrorIs(t, err, cache.ErrMiss)

	// adjusting an uncached counter is a no-op
	require.NoError(t, rc.AdjustFavoriteCount(ctx, "Yusuf", 1))
	assert.False(t, mr.Exists(rc.KeyForFavoriteCount("Yusuf")))

	require.NoError(t, rc.SetFavoriteCount(ctx, "Yusuf", 4))
	require.NoError(t, rc.AdjustFavoriteCount(ctx, "Yusuf", -1))

	n, err := rc.GetFavoriteCount(ctx, "Yusuf")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.Equal(t, cache.CounterTTL, mr.TTL(rc.KeyForFavoriteCount("Yusuf")))
}

func TestAdjustFavoriteCount_ExpiredCounterStaysGone(t *testing.T) {
	ctx := context.Background()
	rc, mr := setupCache(t)
	key := rc.KeyForFavoriteCount("Maryam")

	require.NoError(t, rc.SetFavoriteCount(ctx, "Maryam", 2))
	require.NoError(t, rc.AdjustFavoriteCount(ctx, "Maryam", 1))
	assert.Equal(t, "3", mustGet(t, mr, key))

	mr.FastForward(cache.CounterTTL + time.Second)
	require.NoError(t, rc.AdjustFavoriteCount(ctx, "Maryam", -1))
	assert.False(t, mr.Exists(key))

	// the script also refreshes the TTL of a live counter
	require.NoError(t, rc.SetFavoriteCount(ctx, "Maryam", 5))
	mr.FastForward(30 * time.Minute)
	require.NoError(t, rc.AdjustFavoriteCount(ctx, "Maryam", 1))
	assert.Equal(t, cache.CounterTTL, mr.TTL(key))
	assert.Equal(t, "6", mustGet(t, mr, key))
}

func TestExists(t *testing.T) {
	ctx := context.Background()
	rc, mr := setupCache(t)
	key := rc.KeyForSession("tok")

	ok, err := rc.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, rc.Set(ctx, key, "{}", time.Minute))
	mr.FastForward(20 * time.Second)
	ok, err = rc.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 40*time.Second, mr.TTL(key))
}

func mustGet(t *testing.T, mr *miniredis.Miniredis, key string) string {
	t.Helper()
	v, err := mr.Get(key)
	require.NoError(t, err)
	return v
}
