package intent_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"intent-coordinator/internal/intent"
)

func TestPublicErrorTable(t *testing.T) {
	cases := []struct {
		kind    intent.Kind
		status  int
		code    string
		message string
	}{
		{intent.KindInvalidInput, http.StatusBadRequest, "INVALID_INPUT", "Invalid intent text."},
		{intent.KindUnparseableIntent, http.StatusUnprocessableEntity, "UNPARSEABLE_INTENT", "Unable to parse intent. Please rephrase."},
		{intent.KindParserUnavailable, http.StatusServiceUnavailable, "PARSER_UNAVAILABLE", "Intent parsing service temporarily unavailable."},
		{intent.KindIdempotencyKeyConflict, http.StatusConflict, "IDEMPOTENCY_KEY_CONFLICT", "Idempotency key conflict."},
		{intent.KindRateLimited, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests."},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			p := intent.PublicError(tc.kind)
			assert.Equal(t, tc.status, p.Status)
			assert.Equal(t, tc.code, p.Code)
			assert.Equal(t, tc.message, p.Message)
		})
	}
}

func TestPublicErrorUnknownKindIsUnavailable(t *testing.T) {
	assert.Equal(t, intent.PublicError(intent.KindParserUnavailable), intent.PublicError(intent.KindUnknown))
}

func TestErrorClassification(t *testing.T) {
	cause := errors.New("amount must be positive")
	err := fmt.Errorf("post-process: %w", intent.NewError(intent.KindUnparseableIntent, cause))

	assert.True(t, errors.Is(err, intent.ErrUnparseableIntent))
	assert.False(t, errors.Is(err, intent.ErrParserUnavailable))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, intent.KindUnparseableIntent, intent.KindOf(err))
	assert.Equal(t, intent.KindUnknown, intent.KindOf(cause))
}

func TestPublicMessageHidesCause(t *testing.T) {
	err := intent.NewError(intent.KindParserUnavailable, errors.New("dial tcp 10.0.0.1:443: connection refused"))
	p := intent.PublicError(intent.KindOf(err))
	assert.NotContains(t, p.Message, "10.0.0.1")
}
