package http

import (
	"intent-coordinator/internal/token"
	"intent-coordinator/pkg/log"
)

type handler struct {
	l        log.Logger
	registry token.Registry
}

// New creates a new HTTP handler for the token registry.
func New(l log.Logger, registry token.Registry) *handler {
	return &handler{
		l:        l,
		registry: registry,
	}
}
