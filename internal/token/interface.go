package token

import "context"

// Registry resolves the token catalog of a network.
//
//go:generate mockery --name Registry
type Registry interface {
	// GetTokens returns the catalog for network. The result must be treated as read-only.
	GetTokens(ctx context.Context, network string) ([]Token, error)
}
