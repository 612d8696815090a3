package usecase

import (
	"regexp"

	"intent-coordinator/internal/intent"
)

const (
	minExpiryMinutes = 1
	maxExpiryMinutes = 1440
	maxSlippageBps   = 5000
)

// Phrasings the pre-AI guard recognizes. Each captures a token symbol.
var symbolMentionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:swap|sell)\s+\d+(?:\.\d+)?\s+([a-z]{2,10})\b`),
	regexp.MustCompile(`(?i)\b(?:to|for)\s+([a-z]{2,10})\b`),
	regexp.MustCompile(`(?i)\bmin\s+\d+(?:\.\d+)?\s+([a-z]{2,10})\b`),
}

var supportedSymbols = map[string]bool{
	intent.SymbolSUI:  true,
	intent.SymbolUSDC: true,
}

// supportedPairs lists the allowed sell->buy directions.
var supportedPairs = map[[2]string]bool{
	{intent.SymbolSUI, intent.SymbolUSDC}: true,
	{intent.SymbolUSDC, intent.SymbolSUI}: true,
}
