package http

import (
	"intent-coordinator/internal/intent"
	"intent-coordinator/pkg/log"
)

// Response headers set by the free-text endpoint.
const (
	HeaderIdempotencyKey     = "Idempotency-Key"
	HeaderIdempotentReplay   = "X-Idempotent-Replay"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
)

type handler struct {
	l  log.Logger
	uc intent.UseCase
}

// New creates a new HTTP handler for intent parsing.
func New(l log.Logger, uc intent.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
