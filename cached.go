package strata

import (
	"context"
	"sync"
	"sync/atomic"
)

// Cached memoizes a resolver's result for the life of the process. Reload
// swaps the stored Settings in a single atomic step, so concurrent readers
// never observe a partially rebuilt mapping.
type Cached struct {
	resolver *Resolver
	mu       sync.Mutex // serializes resolution, not reads
	current  atomic.Pointer[Settings]
}

// NewCached wraps a resolver with a process-wide memo.
func NewCached(r *Resolver) *Cached {
	return &Cached{resolver: r}
}

// Load returns the memoized Settings, resolving on first use.
func (c *Cached) Load(ctx context.Context) (*Settings, error) {
	if s := c.current.Load(); s != nil {
		return s, nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if s := c.current.Load(); s != nil {
		return s, nil
	}
	s, err := c.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	c.current.Store(s)
	return s, nil
}

// Reload re-resolves from the sources and replaces the cached Settings. On
// failure the previous Settings stay in place and keep serving readers.
func (c *Cached) Reload(ctx context.Context) (*Settings, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, err := c.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	c.current.Store(s)
	return s, nil
}

// Current returns the cached Settings without resolving, or nil before the
// first successful Load.
func (c *Cached) Current() *Settings {
	return c.current.Load()
}
