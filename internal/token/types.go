package token

import "strings"

// Token is one entry of a per-network token registry.
type Token struct {
	// Canonical on-chain coin type, e.g. 0x2::sui::SUI.
	ID       string `json:"id"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
	// Indicative USD price as a decimal string. Empty when unknown.
	IndicativePriceUSD string `json:"indicativePriceUsd,omitempty"`
}

// HasPrice reports whether the token carries an indicative USD price.
func (t Token) HasPrice() bool {
	return strings.TrimSpace(t.IndicativePriceUSD) != ""
}

// NormalizeNetwork lower-cases and trims a network name.
func NormalizeNetwork(network string) string {
	return strings.ToLower(strings.TrimSpace(network))
}

// PickBySymbol finds the token whose symbol matches case-insensitively.
func PickBySymbol(tokens []Token, symbol string) (Token, bool) {
	for _, t := range tokens {
		if strings.EqualFold(t.Symbol, symbol) {
			return t, true
		}
	}
	return Token{}, false
}
