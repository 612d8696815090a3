// Package errors defines errors that carry their own HTTP rendering.
package errors

import "fmt"

// HTTPError is an error the response layer renders verbatim. Message must be
// safe to show to any caller.
type HTTPError struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string]any
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(statusCode int, code, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Code: code, Message: message}
}

// WithDetails returns a copy of e carrying details.
func (e *HTTPError) WithDetails(details map[string]any) *HTTPError {
	cp := *e
	cp.Details = details
	return &cp
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Message)
}
