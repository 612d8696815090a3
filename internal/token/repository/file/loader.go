// Package file loads token catalogs from JSON files named tokens.<network>.json.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"

	"intent-coordinator/internal/token"
)

var networkPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Loader reads catalogs from a directory on disk.
type Loader struct {
	dir string
}

var _ token.Loader = (*Loader)(nil)

// New creates a Loader rooted at dir.
func New(dir string) *Loader {
	return &Loader{dir: dir}
}

// Path returns the catalog file path for network.
func (l *Loader) Path(network string) string {
	return filepath.Join(l.dir, fmt.Sprintf("tokens.%s.json", network))
}

// LoadTokens reads and strictly decodes the catalog of network. The read has
// no timeout of its own.
func (l *Loader) LoadTokens(_ context.Context, network string) ([]token.Token, error) {
	if !networkPattern.MatchString(network) {
		return nil, fmt.Errorf("%w: %q", token.ErrInvalidNetwork, network)
	}

	raw, err := os.ReadFile(l.Path(network))
	if err != nil {
		return nil, fmt.Errorf("read token registry: %w", err)
	}
	return Decode(raw)
}

// Decode parses a JSON array of {id, symbol, decimals, indicativePriceUsd?}.
func Decode(raw []byte) ([]token.Token, error) {
	var entries []map[string]any
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("invalid token registry file: expected a JSON array of objects: %w", err)
	}

	tokens := make([]token.Token, 0, len(entries))
	for i, e := range entries {
		t, err := decodeEntry(e)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		tokens = append(tokens, t)
	}
	return tokens, nil
}

func decodeEntry(e map[string]any) (token.Token, error) {
	if e == nil {
		return token.Token{}, fmt.Errorf("%w: expected object", token.ErrInvalidEntry)
	}

	id, ok := e["id"].(string)
	if !ok {
		return token.Token{}, fmt.Errorf("%w: id must be a string", token.ErrInvalidEntry)
	}
	symbol, ok := e["symbol"].(string)
	if !ok {
		return token.Token{}, fmt.Errorf("%w: symbol must be a string", token.ErrInvalidEntry)
	}

	decimals, ok := e["decimals"].(float64)
	if !ok || decimals != math.Trunc(decimals) || decimals < 0 || decimals > math.MaxInt32 {
		return token.Token{}, fmt.Errorf("%w: decimals must be a non-negative integer", token.ErrInvalidEntry)
	}

	var price string
	if v, present := e["indicativePriceUsd"]; present {
		s, ok := v.(string)
		if !ok {
			return token.Token{}, fmt.Errorf("%w: indicativePriceUsd must be a string if present", token.ErrInvalidEntry)
		}
		price = s
	}

	t := token.Token{
		ID:                 id,
		Symbol:             symbol,
		Decimals:           int(decimals),
		IndicativePriceUSD: price,
	}
	return t, token.Validate(t)
}
