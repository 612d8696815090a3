package usecase

import (
	"time"

	"golang.org/x/sync/singleflight"

	"intent-coordinator/internal/idempotency"
	"intent-coordinator/internal/intent"
	"intent-coordinator/internal/ratelimit"
	"intent-coordinator/internal/token"
	"intent-coordinator/pkg/log"
)

// Config carries the validated process configuration the use case needs.
type Config struct {
	Model                 string
	MaxTextLen            int
	DefaultExpiryMinutes  int
	DefaultMaxSlippageBps int
	ParserTimeout         time.Duration
	// CoalesceInflight makes concurrent requests with the same idempotency
	// key and text share one parse.
	CoalesceInflight bool
}

// RateLimiter is satisfied by *ratelimit.Limiter.
type RateLimiter interface {
	Hit(key string, now time.Time) ratelimit.Result
}

// implUseCase is the private implementation of intent.UseCase.
type implUseCase struct {
	l        log.Logger
	registry token.Registry
	parser   intent.Parser
	store    idempotency.Store
	limiter  RateLimiter
	cfg      Config
	now      func() time.Time
	inflight singleflight.Group
}

var _ intent.UseCase = (*implUseCase)(nil)

// New creates a new intent UseCase implementation. parser may be nil when no
// provider is configured; requests then fail as parser unavailable. now
// defaults to time.Now.
func New(
	l log.Logger,
	registry token.Registry,
	parser intent.Parser,
	store idempotency.Store,
	limiter RateLimiter,
	cfg Config,
	now func() time.Time,
) *implUseCase {
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:        l,
		registry: registry,
		parser:   parser,
		store:    store,
		limiter:  limiter,
		cfg:      cfg,
		now:      now,
	}
}
