package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedValue struct {
	Name string `json:"name"`
}

func TestRedisRepository(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	repo := NewRedisRepository(client)
	ctx := context.Background()

	t.Run("Missing Key", func(t *testing.T) {
		value, err := repo.Get(ctx, "absent")
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("Set Get Delete", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "key", cachedValue{Name: "Ona Onaitė"}, time.Minute))

		value, err := repo.Get(ctx, "key")
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Ona Onaitė"}`, value)

		require.NoError(t, repo.Delete(ctx, "key"))
		value, err = repo.Get(ctx, "key")
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("Expiry", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "short", cachedValue{Name: "x"}, time.Second))
		mr.FastForward(2 * time.Second)

		value, err := repo.Get(ctx, "short")
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("Server Down", func(t *testing.T) {
		down := miniredis.RunT(t)
		downClient := redis.NewClient(&redis.Options{Addr: down.Addr(), MaxRetries: -1})
		t.Cleanup(func() { downClient.Close() })
		down.Close()

		_, err := NewRedisRepository(downClient).Get(ctx, "key")
		assert.Error(t, err)
	})
}

func TestMemoryRepository(t *testing.T) {
	current := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	repo := &memoryRepository{
		entries: make(map[string]memoryEntry),
		now:     func() time.Time { return current },
	}
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "key", cachedValue{Name: "Jonas"}, time.Minute))
	value, err := repo.Get(ctx, "key")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Jonas"}`, value)

	current = current.Add(time.Minute)
	value, err = repo.Get(ctx, "key")
	require.NoError(t, err)
	assert.Empty(t, value, "entry must expire at its deadline")

	require.NoError(t, repo.Set(ctx, "forever", cachedValue{Name: "Ona"}, 0))
	current = current.Add(24 * time.Hour)
	value, err = repo.Get(ctx, "forever")
	require.NoError(t, err)
	assert.NotEmpty(t, value)

	require.NoError(t, repo.Delete(ctx, "forever"))
	value, err = repo.Get(ctx, "forever")
	require.NoError(t, err)
	assert.Empty(t, value)
}
