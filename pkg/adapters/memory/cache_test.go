package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/hexcomb/pkg/adapters/memory"
	"github.com/aretw0/hexcomb/pkg/domain"
	"github.com/aretw0/hexcomb/pkg/ports"
)

func TestMemoryCache_Contract(t *testing.T) {
	cache := memory.NewCache()
	ports.RunResultCacheContract(t, cache)
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := memory.NewCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "k", &domain.Result{Words: []string{"BEE"}}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if cache.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", cache.Len())
	}

	if err := cache.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := cache.Get(ctx, "k"); !errors.Is(err, domain.ErrResultNotFound) {
		t.Errorf("expected ErrResultNotFound after delete, got %v", err)
	}
	if cache.Len() != 0 {
		t.Errorf("Len() = %d after delete, want 0", cache.Len())
	}
}
