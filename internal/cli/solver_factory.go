package cli

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/hexcomb"
	"github.com/aretw0/hexcomb/pkg/adapters/file"
	"github.com/aretw0/hexcomb/pkg/adapters/memory"
	"github.com/aretw0/hexcomb/pkg/adapters/redis"
	"github.com/aretw0/hexcomb/pkg/persistence/middleware"
	"github.com/aretw0/hexcomb/pkg/ports"
)

// SolverConfig carries the settings shared by every command that builds a solver.
type SolverConfig struct {
	DictPath string
	// Cache selects the result cache: "" disables caching, "memory" keeps
	// results in-process, anything else is parsed as a Redis URL.
	Cache    string
	CacheTTL time.Duration
	// CacheKey, when non-empty, is a hex-encoded AES-256 key. Cached
	// results are sealed with it before they reach the backend.
	CacheKey string
}

// BuildSolver initializes a hexcomb solver with standard CLI conventions.
// The returned cleanup releases the cache connection, if any.
func BuildSolver(ctx context.Context, cfg SolverConfig, logger *slog.Logger) (*hexcomb.Solver, func(), error) {
	words, err := file.NewDictionary(cfg.DictPath).Words(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading dictionary: %w", err)
	}

	var cache ports.ResultCache
	cleanup := func() {}

	switch cfg.Cache {
	case "":
		// No cache
	case "memory":
		cache = memory.NewCache()
	default:
		ropts, err := backend.ParseURL(cfg.Cache)
		if err != nil {
			return nil, nil, fmt.Errorf("error parsing cache URL: %w", err)
		}
		rc := redis.NewFromClient(backend.NewClient(ropts), redis.WithTTL(cfg.CacheTTL))
		cache = rc
		cleanup = func() { _ = rc.Close() }
	}

	opts := []hexcomb.Option{hexcomb.WithLogger(logger)}
	if cache != nil {
		if cfg.CacheKey != "" {
			key, err := hex.DecodeString(cfg.CacheKey)
			if err != nil {
				cleanup()
				return nil, nil, fmt.Errorf("error decoding cache key: %w", err)
			}
			if len(key) != 32 {
				cleanup()
				return nil, nil, fmt.Errorf("cache key must be 32 bytes (64 hex characters), got %d", len(key))
			}
			cache = middleware.Chain(cache, middleware.NewEncryption(middleware.EncryptionConfig{ActiveKey: key}))
		}
		opts = append(opts, hexcomb.WithResultCache(cache))
	}

	solver, err := hexcomb.New(words, opts...)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("error initializing solver: %w", err)
	}

	logger.Debug("Solver ready", "words", solver.WordCount(), "cache", cfg.Cache)
	return solver, cleanup, nil
}
