package usecase

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"intent-coordinator/internal/intent"
)

// validateInput rejects missing, blank and oversized text. Length is counted
// in runes.
func (uc *implUseCase) validateInput(text *string) (string, error) {
	if text == nil || strings.TrimSpace(*text) == "" {
		return "", intent.NewError(intent.KindInvalidInput, errors.New("text is empty"))
	}
	if n := utf8.RuneCountInString(*text); n > uc.cfg.MaxTextLen {
		return "", intent.NewError(intent.KindInvalidInput, fmt.Errorf("text has %d characters, limit %d", n, uc.cfg.MaxTextLen))
	}
	return *text, nil
}

// extractSymbolMentions returns the symbols named in recognized swap
// phrasing, upper-cased. Text that matches no pattern yields nothing.
func extractSymbolMentions(text string) []string {
	var out []string
	for _, re := range symbolMentionPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if s := strings.ToUpper(strings.TrimSpace(m[1])); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// rejectUnsupportedMentions fails before any model call when the text
// clearly names a token outside the supported pair.
func rejectUnsupportedMentions(text string) error {
	for _, sym := range extractSymbolMentions(text) {
		if !supportedSymbols[sym] {
			return intent.NewError(intent.KindUnparseableIntent, fmt.Errorf("unsupported token mention %q", sym))
		}
	}
	return nil
}
