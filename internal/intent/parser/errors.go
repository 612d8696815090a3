package parser

import "errors"

var (
	// ErrProviderUnavailable means no provider could be built.
	ErrProviderUnavailable = errors.New("parser provider unavailable")

	// ErrNoToolCallReturned means the model answered without tool arguments.
	ErrNoToolCallReturned = errors.New("no tool call returned")

	// ErrTimeout means the shared deadline ran out.
	ErrTimeout = errors.New("parser deadline exceeded")
)
