package token

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"

	"intent-coordinator/pkg/log"
)

// Loader reads the raw catalog of one network from its backing store.
type Loader interface {
	LoadTokens(ctx context.Context, network string) ([]Token, error)
}

// CachedRegistry loads each network's catalog on first use and keeps it for
// the lifetime of the process. There is no invalidation; a restart is needed
// to pick up catalog changes.
type CachedRegistry struct {
	loader Loader
	l      log.Logger

	mu    sync.RWMutex
	cache map[string][]Token
	group singleflight.Group
}

var _ Registry = (*CachedRegistry)(nil)

// NewCachedRegistry creates a registry backed by loader.
func NewCachedRegistry(loader Loader, l log.Logger) *CachedRegistry {
	return &CachedRegistry{
		loader: loader,
		l:      l,
		cache:  make(map[string][]Token),
	}
}

// GetTokens returns a copy of the cached catalog, loading it at most once per
// network even under concurrent first requests.
func (r *CachedRegistry) GetTokens(ctx context.Context, network string) ([]Token, error) {
	key := NormalizeNetwork(network)

	r.mu.RLock()
	cached, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return slices.Clone(cached), nil
	}

	v, err, _ := r.group.Do(key, func() (any, error) {
		r.mu.RLock()
		if cached, ok := r.cache[key]; ok {
			r.mu.RUnlock()
			return cached, nil
		}
		r.mu.RUnlock()

		loaded, err := r.loader.LoadTokens(ctx, key)
		if err != nil {
			return nil, err
		}
		for i, t := range loaded {
			if err := Validate(t); err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
		}

		frozen := slices.Clone(loaded)
		r.mu.Lock()
		r.cache[key] = frozen
		r.mu.Unlock()

		r.l.Infof(ctx, "token registry loaded: network=%s tokens=%d", key, len(frozen))
		return frozen, nil
	})
	if err != nil {
		r.l.Errorf(ctx, "token registry load failed: network=%s err=%v", key, err)
		return nil, fmt.Errorf("%w: %w", ErrRegistryUnavailable, err)
	}

	return slices.Clone(v.([]Token)), nil
}
