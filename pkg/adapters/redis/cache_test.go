package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/aretw0/hexcomb/pkg/adapters/redis"
	"github.com/aretw0/hexcomb/pkg/domain"
	"github.com/aretw0/hexcomb/pkg/ports"
)

func TestRedisCache_Contract(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	cache := redis.NewFromClient(client)
	ports.RunResultCacheContract(t, cache)
}

func TestRedisCache_TTL_Expiration(t *testing.T) {
	mr, err := miniredis.Run()
	assert.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	cache := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	ctx := context.Background()
	res := &domain.Result{Words: []string{"BEE", "COMB"}}

	err = cache.Set(ctx, "puzzle-ttl", res)
	assert.NoError(t, err)

	loaded, err := cache.Get(ctx, "puzzle-ttl")
	assert.NoError(t, err)
	assert.Equal(t, res.Words, loaded.Words)

	// Fast forward time in miniredis past the TTL
	mr.FastForward(2 * time.Second)

	_, err = cache.Get(ctx, "puzzle-ttl")
	assert.ErrorIs(t, err, domain.ErrResultNotFound)
}

func TestRedisCache_Prefix(t *testing.T) {
	mr, err := miniredis.Run()
	assert.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	cache := redis.NewFromClient(client, redis.WithPrefix("custom:app:"))
	ctx := context.Background()

	err = cache.Set(ctx, "my-puzzle", &domain.Result{Words: []string{"BEE"}})
	assert.NoError(t, err)

	// Key should be "custom:app:my-puzzle"
	exists := mr.Exists("custom:app:my-puzzle")
	assert.True(t, exists, "Expected key with custom prefix to exist")
}
