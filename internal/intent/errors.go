package intent

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies every failure a parse request can end in.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidInput
	KindUnparseableIntent
	KindParserUnavailable
	KindIdempotencyKeyConflict
	KindRateLimited
)

func (k Kind) String() string {
	if p, ok := publicErrors[k]; ok {
		return p.Code
	}
	return "UNKNOWN"
}

// Public is what a caller is allowed to see for a Kind.
type Public struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Several distinct causes share one message so probing clients cannot learn
// which check rejected them.
var publicErrors = map[Kind]Public{
	KindInvalidInput:           {http.StatusBadRequest, "INVALID_INPUT", "Invalid intent text."},
	KindUnparseableIntent:      {http.StatusUnprocessableEntity, "UNPARSEABLE_INTENT", "Unable to parse intent. Please rephrase."},
	KindParserUnavailable:      {http.StatusServiceUnavailable, "PARSER_UNAVAILABLE", "Intent parsing service temporarily unavailable."},
	KindIdempotencyKeyConflict: {http.StatusConflict, "IDEMPOTENCY_KEY_CONFLICT", "Idempotency key conflict."},
	KindRateLimited:            {http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests."},
}

// PublicError returns the public rendering of kind. Unknown kinds render as
// parser unavailability.
func PublicError(kind Kind) Public {
	if p, ok := publicErrors[kind]; ok {
		return p
	}
	return publicErrors[KindParserUnavailable]
}

// Error is a classified failure. Cause is for logs only.
type Error struct {
	Kind  Kind
	Cause error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches another *Error of the same Kind, so the sentinels below work
// with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Cause == nil && t.Kind == e.Kind
}

// NewError classifies cause as kind.
func NewError(kind Kind, cause error) error {
	return &Error{Kind: kind, Cause: cause}
}

var (
	ErrInvalidInput           = &Error{Kind: KindInvalidInput}
	ErrUnparseableIntent      = &Error{Kind: KindUnparseableIntent}
	ErrParserUnavailable      = &Error{Kind: KindParserUnavailable}
	ErrIdempotencyKeyConflict = &Error{Kind: KindIdempotencyKeyConflict}
	ErrRateLimited            = &Error{Kind: KindRateLimited}
)

// KindOf extracts the Kind of err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
