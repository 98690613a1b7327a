// Package middleware wraps a ResultCache with cross-cutting behavior such as
// encryption at rest.
package middleware

import "github.com/aretw0/hexcomb/pkg/ports"

// Middleware allows wrapping a ResultCache to add behavior.
type Middleware func(ports.ResultCache) ports.ResultCache

// Chain wraps cache with the given middlewares. The first middleware becomes
// the outermost layer.
func Chain(cache ports.ResultCache, mws ...Middleware) ports.ResultCache {
	for i := len(mws) - 1; i >= 0; i-- {
		cache = mws[i](cache)
	}
	return cache
}
