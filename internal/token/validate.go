package token

import (
	"fmt"
	"strings"
)

// Validate checks the invariants every catalog entry must satisfy.
func Validate(t Token) error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("%w: id must be a non-empty string", ErrInvalidEntry)
	}
	if strings.TrimSpace(t.Symbol) == "" {
		return fmt.Errorf("%w: symbol must be a non-empty string", ErrInvalidEntry)
	}
	if t.Decimals < 0 {
		return fmt.Errorf("%w: decimals must be a non-negative integer", ErrInvalidEntry)
	}
	return nil
}
