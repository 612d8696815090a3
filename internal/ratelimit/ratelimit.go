// Package ratelimit is a fixed-window request counter per key.
//
// A window opens on the first hit of a key and lasts Window. Bursts of up to
// twice Limit can straddle a window boundary; callers needing a smoother
// guarantee should use a token bucket instead.
package ratelimit

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultMaxKeys bounds tracked keys when Config.MaxKeys is zero.
const DefaultMaxKeys = 10_000

type Config struct {
	Limit   int
	Window  time.Duration
	MaxKeys int
}

// Result is the outcome of one hit.
type Result struct {
	Allowed   bool
	Remaining int
}

type bucket struct {
	windowStart time.Time
	count       int
}

// Limiter is safe for concurrent use.
type Limiter struct {
	limit  int
	window time.Duration

	mu      sync.Mutex
	buckets *expirable.LRU[string, *bucket]
}

// New creates a Limiter. Buckets idle for a full window are reclaimed in the
// background since their next hit would reset them anyway.
func New(cfg Config) *Limiter {
	size := cfg.MaxKeys
	if size <= 0 {
		size = DefaultMaxKeys
	}
	return &Limiter{
		limit:   cfg.Limit,
		window:  cfg.Window,
		buckets: expirable.NewLRU[string, *bucket](size, nil, cfg.Window),
	}
}

// Hit counts one request for key at now.
func (l *Limiter) Hit(key string, now time.Time) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets.Get(key)
	if !ok || now.Sub(b.windowStart) >= l.window {
		l.buckets.Add(key, &bucket{windowStart: now, count: 1})
		return Result{Allowed: true, Remaining: max(0, l.limit-1)}
	}

	if b.count >= l.limit {
		return Result{Allowed: false, Remaining: 0}
	}
	b.count++
	return Result{Allowed: true, Remaining: max(0, l.limit-b.count)}
}

// Key builds the limiter key of a caller on a network.
func Key(network, callerID string) string {
	return network + ":" + callerID
}
