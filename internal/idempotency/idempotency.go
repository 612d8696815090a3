// Package idempotency stores successful responses under caller-supplied keys.
package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Record is what a key maps to. Records are never mutated once stored.
type Record struct {
	TextHash string `json:"textHash"`
	// Response is the serialized response, replayed byte for byte.
	Response []byte `json:"response"`
	// ExpiresAt is fixed at write time.
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether r is past its expiry at now.
func (r Record) Expired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

// Store is a TTL-keyed record store.
//
//go:generate mockery --name Store
type Store interface {
	// Get returns the record for key. Records past their expiry are purged
	// and reported as absent.
	Get(ctx context.Context, key string, now time.Time) (Record, bool, error)
	// Set stores rec under key with an expiry of now plus the store TTL.
	// An existing live record is kept.
	Set(ctx context.Context, key string, rec Record, now time.Time) error
}

// Key scopes an idempotency key to a network.
func Key(network, idempotencyKey string) string {
	return network + ":" + idempotencyKey
}

// HashText returns the hex SHA-256 of the raw request text.
func HashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
