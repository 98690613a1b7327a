package ports

import (
	"context"

	"github.com/aretw0/hexcomb/pkg/domain"
)

// ResultCache stores solved results keyed by an opaque digest string.
// Caches are an optimization: the solver tolerates misses and write failures.
type ResultCache interface {
	// Get retrieves a cached result.
	// Returns domain.ErrResultNotFound if the key is absent.
	Get(ctx context.Context, key string) (*domain.Result, error)

	// Set stores a result under the key, overwriting any previous value.
	Set(ctx context.Context, key string, res *domain.Result) error
}
