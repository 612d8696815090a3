// Package redis is an idempotency store shared between service replicas.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"intent-coordinator/internal/idempotency"
)

// DefaultKeyPrefix namespaces keys when Config.KeyPrefix is empty.
const DefaultKeyPrefix = "intent:idem:"

type Config struct {
	TTL       time.Duration
	KeyPrefix string
}

// Store keeps records as JSON strings with a Redis-side expiry.
type Store struct {
	client goredis.UniversalClient
	ttl    time.Duration
	prefix string
}

var _ idempotency.Store = (*Store)(nil)

// New creates a Store on an existing client.
func New(client goredis.UniversalClient, cfg Config) *Store {
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Store{client: client, ttl: cfg.TTL, prefix: prefix}
}

// Connect dials Redis and verifies the connection.
func Connect(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	if addr == "" {
		return nil, errors.New("redis address is required")
	}
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

func (s *Store) Get(ctx context.Context, key string, now time.Time) (idempotency.Record, bool, error) {
	raw, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return idempotency.Record{}, false, nil
	}
	if err != nil {
		return idempotency.Record{}, false, fmt.Errorf("redis get: %w", err)
	}

	var rec idempotency.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return idempotency.Record{}, false, fmt.Errorf("redis decode: %w", err)
	}
	if rec.Expired(now) {
		if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
			return idempotency.Record{}, false, fmt.Errorf("redis del: %w", err)
		}
		return idempotency.Record{}, false, nil
	}
	return rec, true, nil
}

// Set writes with SET NX so the first successful response wins.
func (s *Store) Set(ctx context.Context, key string, rec idempotency.Record, now time.Time) error {
	rec.ExpiresAt = now.Add(s.ttl)
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("redis encode: %w", err)
	}
	if err := s.client.SetNX(ctx, s.prefix+key, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis setnx: %w", err)
	}
	return nil
}
