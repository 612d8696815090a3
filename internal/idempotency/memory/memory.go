// Package memory is an in-process idempotency store.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"intent-coordinator/internal/idempotency"
)

// DefaultMaxEntries bounds the store when Config.MaxEntries is zero.
const DefaultMaxEntries = 10_000

type Config struct {
	TTL        time.Duration
	MaxEntries int
}

// Store keeps records in a size-bounded LRU. Expiry is decided against the
// caller's now; the LRU's own TTL only reclaims memory in the background.
type Store struct {
	ttl   time.Duration
	mu    sync.Mutex
	cache *expirable.LRU[string, idempotency.Record]
}

var _ idempotency.Store = (*Store)(nil)

// New creates a Store.
func New(cfg Config) *Store {
	size := cfg.MaxEntries
	if size <= 0 {
		size = DefaultMaxEntries
	}
	return &Store{
		ttl:   cfg.TTL,
		cache: expirable.NewLRU[string, idempotency.Record](size, nil, cfg.TTL),
	}
}

func (s *Store) Get(_ context.Context, key string, now time.Time) (idempotency.Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.cache.Peek(key)
	if !ok {
		return idempotency.Record{}, false, nil
	}
	if rec.Expired(now) {
		s.cache.Remove(key)
		return idempotency.Record{}, false, nil
	}
	return rec, true, nil
}

func (s *Store) Set(_ context.Context, key string, rec idempotency.Record, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.cache.Peek(key); ok && !existing.Expired(now) {
		return nil
	}
	rec.ExpiresAt = now.Add(s.ttl)
	s.cache.Add(key, rec)
	return nil
}

// Len returns the number of stored records, expired ones included.
func (s *Store) Len() int {
	return s.cache.Len()
}
