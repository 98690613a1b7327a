package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/hexcomb/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunResultCacheContract runs a suite of tests to verify that a ResultCache
// implementation adheres to the defined interface contract.
func RunResultCacheContract(t *testing.T, cache ResultCache) {
	ctx := context.Background()
	key := "contract-test-" + time.Now().Format("20060102150405")

	t.Run("Set and Get", func(t *testing.T) {
		res := &domain.Result{Words: []string{"BEE", "COMB"}}

		err := cache.Set(ctx, key, res)
		require.NoError(t, err, "Set should not return error")

		loaded, err := cache.Get(ctx, key)
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, res.Words, loaded.Words)
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := cache.Get(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, domain.ErrResultNotFound)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, key, &domain.Result{Words: []string{"OLD"}}))
		require.NoError(t, cache.Set(ctx, key, &domain.Result{Words: []string{"NEW"}}))

		loaded, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []string{"NEW"}, loaded.Words)
	})

	t.Run("Empty Result Round Trip", func(t *testing.T) {
		emptyKey := key + "-empty"
		require.NoError(t, cache.Set(ctx, emptyKey, &domain.Result{}))

		loaded, err := cache.Get(ctx, emptyKey)
		require.NoError(t, err, "an empty result is still a hit")
		assert.Empty(t, loaded.Words)
	})
}
