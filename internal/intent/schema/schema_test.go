package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValid(t *testing.T) {
	out, err := Parse([]byte(`{"sell_symbol":"SUI","buy_symbol":"USDC","sell_amount":"10","min_buy_amount":null,"max_slippage_bps":null,"expires_in_minutes":null}`))
	require.NoError(t, err)
	assert.Equal(t, "SUI", out.SellSymbol)
	assert.Equal(t, "USDC", out.BuySymbol)
	assert.Equal(t, "10", out.SellAmount)
	assert.Nil(t, out.MinBuyAmount)
	assert.Nil(t, out.MaxSlippageBps)
	assert.Nil(t, out.ExpiresInMinutes)
}

func TestParseOptionalValues(t *testing.T) {
	out, err := Parse([]byte(`{"sell_symbol":"USDC","buy_symbol":"SUI","sell_amount":"25","min_buy_amount":"1.9","max_slippage_bps":5000,"expires_in_minutes":1440}`))
	require.NoError(t, err)
	require.NotNil(t, out.MinBuyAmount)
	assert.Equal(t, "1.9", *out.MinBuyAmount)
	require.NotNil(t, out.MaxSlippageBps)
	assert.Equal(t, 5000, *out.MaxSlippageBps)
	require.NotNil(t, out.ExpiresInMinutes)
	assert.Equal(t, 1440, *out.ExpiresInMinutes)
}

func TestParseRejects(t *testing.T) {
	cases := map[string]string{
		"not json":           `{`,
		"array":              `[]`,
		"null":               `null`,
		"unknown key":        `{"sell_symbol":"SUI","buy_symbol":"USDC","sell_amount":"10","min_buy_amount":null,"max_slippage_bps":null,"expires_in_minutes":null,"note":"x"}`,
		"omitted optional":   `{"sell_symbol":"SUI","buy_symbol":"USDC","sell_amount":"10","min_buy_amount":null,"max_slippage_bps":null}`,
		"symbol enum":        `{"sell_symbol":"BTC","buy_symbol":"USDC","sell_amount":"10","min_buy_amount":null,"max_slippage_bps":null,"expires_in_minutes":null}`,
		"lower-case symbol":  `{"sell_symbol":"sui","buy_symbol":"USDC","sell_amount":"10","min_buy_amount":null,"max_slippage_bps":null,"expires_in_minutes":null}`,
		"null symbol":        `{"sell_symbol":null,"buy_symbol":"USDC","sell_amount":"10","min_buy_amount":null,"max_slippage_bps":null,"expires_in_minutes":null}`,
		"numeric amount":     `{"sell_symbol":"SUI","buy_symbol":"USDC","sell_amount":10,"min_buy_amount":null,"max_slippage_bps":null,"expires_in_minutes":null}`,
		"numeric min":        `{"sell_symbol":"SUI","buy_symbol":"USDC","sell_amount":"10","min_buy_amount":1.9,"max_slippage_bps":null,"expires_in_minutes":null}`,
		"slippage too high":  `{"sell_symbol":"SUI","buy_symbol":"USDC","sell_amount":"10","min_buy_amount":null,"max_slippage_bps":5001,"expires_in_minutes":null}`,
		"negative slippage":  `{"sell_symbol":"SUI","buy_symbol":"USDC","sell_amount":"10","min_buy_amount":null,"max_slippage_bps":-1,"expires_in_minutes":null}`,
		"fraction slippage":  `{"sell_symbol":"SUI","buy_symbol":"USDC","sell_amount":"10","min_buy_amount":null,"max_slippage_bps":1.5,"expires_in_minutes":null}`,
		"string slippage":    `{"sell_symbol":"SUI","buy_symbol":"USDC","sell_amount":"10","min_buy_amount":null,"max_slippage_bps":"100","expires_in_minutes":null}`,
		"zero expiry":        `{"sell_symbol":"SUI","buy_symbol":"USDC","sell_amount":"10","min_buy_amount":null,"max_slippage_bps":null,"expires_in_minutes":0}`,
		"expiry over a day":  `{"sell_symbol":"SUI","buy_symbol":"USDC","sell_amount":"10","min_buy_amount":null,"max_slippage_bps":null,"expires_in_minutes":1441}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(raw))
			assert.ErrorIs(t, err, ErrSchemaViolation)
		})
	}
}

func TestDecodeThenValidateAreIndependent(t *testing.T) {
	fields, err := Decode([]byte(`{"sell_symbol":"SUI","buy_symbol":"SUI","sell_amount":"","min_buy_amount":"1","max_slippage_bps":100,"expires_in_minutes":null}`))
	require.NoError(t, err)

	// Same symbols and both strategies are business rules, not schema rules.
	out, err := Validate(fields)
	require.NoError(t, err)
	assert.Equal(t, out.SellSymbol, out.BuySymbol)
}
