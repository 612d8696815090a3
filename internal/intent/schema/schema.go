// Package schema validates untrusted tool-call arguments in two stages: a
// wire decode that enforces the closed key set and JSON types, then a business
// check of enums and ranges.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"intent-coordinator/internal/intent"
)

// ErrSchemaViolation wraps every rejection from this package.
var ErrSchemaViolation = errors.New("schema violation")

// Keys is the closed key set of the tool arguments. All keys are required;
// optional values must be an explicit null.
var Keys = []string{
	"sell_symbol",
	"buy_symbol",
	"sell_amount",
	"min_buy_amount",
	"max_slippage_bps",
	"expires_in_minutes",
}

// Fields is a wire-decoded argument object keyed by field name.
type Fields map[string]json.RawMessage

var validate = validator.New(validator.WithRequiredStructEnabled())

// Decode checks that raw is a JSON object with exactly the known keys.
func Decode(raw []byte) (Fields, error) {
	var fields Fields
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: expected object", ErrSchemaViolation)
	}

	for k := range fields {
		if !slices.Contains(Keys, k) {
			return nil, fmt.Errorf("%w: unknown key %q", ErrSchemaViolation, k)
		}
	}
	for _, k := range Keys {
		if _, ok := fields[k]; !ok {
			return nil, fmt.Errorf("%w: missing key %q", ErrSchemaViolation, k)
		}
	}
	return fields, nil
}

// Validate converts fields into a StructuredIntent, rejecting wrong types,
// out-of-enum symbols and out-of-range integers.
func Validate(fields Fields) (intent.StructuredIntent, error) {
	var out intent.StructuredIntent

	if err := decodeString(fields, "sell_symbol", &out.SellSymbol); err != nil {
		return intent.StructuredIntent{}, err
	}
	if err := decodeString(fields, "buy_symbol", &out.BuySymbol); err != nil {
		return intent.StructuredIntent{}, err
	}
	if err := decodeString(fields, "sell_amount", &out.SellAmount); err != nil {
		return intent.StructuredIntent{}, err
	}
	if err := decodeNullable(fields, "min_buy_amount", &out.MinBuyAmount); err != nil {
		return intent.StructuredIntent{}, err
	}
	if err := decodeNullable(fields, "max_slippage_bps", &out.MaxSlippageBps); err != nil {
		return intent.StructuredIntent{}, err
	}
	if err := decodeNullable(fields, "expires_in_minutes", &out.ExpiresInMinutes); err != nil {
		return intent.StructuredIntent{}, err
	}

	if err := validate.Struct(out); err != nil {
		return intent.StructuredIntent{}, fmt.Errorf("%w: %s", ErrSchemaViolation, describe(err))
	}
	return out, nil
}

// Parse runs Decode then Validate.
func Parse(raw []byte) (intent.StructuredIntent, error) {
	fields, err := Decode(raw)
	if err != nil {
		return intent.StructuredIntent{}, err
	}
	return Validate(fields)
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func decodeString(fields Fields, key string, dst *string) error {
	raw := fields[key]
	if raw == nil || isNull(raw) {
		return fmt.Errorf("%w: %s must be a string", ErrSchemaViolation, key)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %s must be a string", ErrSchemaViolation, key)
	}
	return nil
}

func decodeNullable[T any](fields Fields, key string, dst **T) error {
	raw := fields[key]
	if raw == nil || isNull(raw) {
		*dst = nil
		return nil
	}
	v := new(T)
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %s has the wrong type", ErrSchemaViolation, key)
	}
	*dst = v
	return nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}
