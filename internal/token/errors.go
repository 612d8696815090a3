package token

import "errors"

var (
	// ErrRegistryUnavailable means the catalog for a network could not be loaded.
	ErrRegistryUnavailable = errors.New("token registry unavailable")

	// ErrInvalidEntry marks a catalog entry that failed validation.
	ErrInvalidEntry = errors.New("invalid token entry")

	// ErrInvalidNetwork is returned for network names that cannot name a catalog.
	ErrInvalidNetwork = errors.New("invalid network name")
)
