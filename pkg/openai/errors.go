package openai

import (
	"errors"
	"fmt"
)

// APIError is a non-2xx answer from the provider.
type APIError struct {
	StatusCode int
	// Message is the provider's error message, or the raw body when it had
	// no parseable message.
	Message string
	Type    string
	Param   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openai: API error %d: %s", e.StatusCode, e.Message)
}

// AsAPIError unwraps err into an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
