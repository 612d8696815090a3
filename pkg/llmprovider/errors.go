package llmprovider

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrProviderNotConfigured indicates the provider has no API key or model
	ErrProviderNotConfigured = errors.New("provider not configured")

	// ErrUnknownProvider indicates an unsupported provider name
	ErrUnknownProvider = errors.New("unknown provider")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	// StatusCode is the HTTP status of the provider answer, 0 for transport errors
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsUnsupportedTemperature reports whether err is the 400 some models return
// when asked for a non-default temperature.
func IsUnsupportedTemperature(err error) bool {
	var pe *ProviderError
	if !errors.As(err, &pe) || pe.StatusCode != http.StatusBadRequest {
		return false
	}
	msg := pe.Error()
	return strings.Contains(msg, "Unsupported value: 'temperature'") &&
		strings.Contains(msg, "Only the default")
}
