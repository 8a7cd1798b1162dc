package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client), mr
}

func TestRedisGet_Success(t *testing.T) {
	s, mr := setupTestRedis(t)

	require.NoError(t, mr.Set("storefront:currency", "USD"))

	v, err := s.Get(context.Background(), KeyCurrency)
	require.NoError(t, err)
	assert.Equal(t, "USD", v)
}

func TestRedisGet_Missing(t *testing.T) {
	s, _ := setupTestRedis(t)

	_, err := s.Get(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisSet_PersistsWithoutTTL(t *testing.T) {
	s, mr := setupTestRedis(t)

	err := s.Set(context.Background(), KeyWishlist, `[{"name":"Mug"}]`)
	require.NoError(t, err)

	stored, err := mr.Get("storefront:wishlist")
	require.NoError(t, err)
	assert.Equal(t, `[{"name":"Mug"}]`, stored)
	assert.Zero(t, mr.TTL("storefront:wishlist"), "persisted keys carry no TTL")
}

func TestRedisSet_Overwrite(t *testing.T) {
	s, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyCurrency, "EUR"))
	require.NoError(t, s.Set(ctx, KeyCurrency, "GBP"))

	v, err := s.Get(ctx, KeyCurrency)
	require.NoError(t, err)
	assert.Equal(t, "GBP", v)
}
