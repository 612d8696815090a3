package middleware

import (
	"slices"

	"intent-coordinator/internal/token"
	"intent-coordinator/pkg/log"
)

type Middleware struct {
	l        log.Logger
	networks []string
}

// New creates the middleware set. networks are the accepted values of the
// network query parameter.
func New(l log.Logger, networks []string) Middleware {
	normalized := make([]string, 0, len(networks))
	for _, n := range networks {
		if n = token.NormalizeNetwork(n); n != "" && !slices.Contains(normalized, n) {
			normalized = append(normalized, n)
		}
	}
	return Middleware{
		l:        l,
		networks: normalized,
	}
}
