// Package decimal converts between base-10 decimal strings and scaled integers
// (atomic amounts). No floating point is used anywhere in this package.
package decimal

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// USDPriceDecimals is the fixed scale used for indicative USD prices.
const USDPriceDecimals = 6

// BpsDenominator is the number of basis points in 100%.
const BpsDenominator = 10_000

var (
	// ErrInvalidDecimal is returned for any string that is not a plain
	// non-negative decimal or has more fractional digits than allowed.
	ErrInvalidDecimal = errors.New("invalid decimal")

	decimalPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

// Pow10 returns 10^n. n must be non-negative.
func Pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// ParseToInteger parses value as a decimal with at most decimals fractional
// digits and returns it scaled by 10^decimals.
func ParseToInteger(value string, decimals int) (*big.Int, error) {
	if decimals < 0 {
		return nil, fmt.Errorf("%w: negative decimals %d", ErrInvalidDecimal, decimals)
	}
	trimmed := strings.TrimSpace(value)
	if !decimalPattern.MatchString(trimmed) {
		return nil, ErrInvalidDecimal
	}

	whole, frac, _ := strings.Cut(trimmed, ".")
	if len(frac) > decimals {
		return nil, fmt.Errorf("%w: %d fractional digits exceed %d", ErrInvalidDecimal, len(frac), decimals)
	}

	digits := whole + frac + strings.Repeat("0", decimals-len(frac))
	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, ErrInvalidDecimal
	}
	return n, nil
}

// FormatInteger renders a scaled integer as a decimal string. Trailing
// fractional zeros are trimmed and a zero fraction is dropped entirely.
func FormatInteger(value *big.Int, decimals int) string {
	if value == nil {
		return "0"
	}
	sign := ""
	abs := new(big.Int).Set(value)
	if abs.Sign() < 0 {
		sign = "-"
		abs.Neg(abs)
	}
	if decimals <= 0 {
		return sign + abs.String()
	}

	whole, frac := new(big.Int).QuoRem(abs, Pow10(decimals), new(big.Int))
	if frac.Sign() == 0 {
		return sign + whole.String()
	}

	fracStr := frac.String()
	fracStr = strings.Repeat("0", decimals-len(fracStr)) + fracStr
	fracStr = strings.TrimRight(fracStr, "0")
	return sign + whole.String() + "." + fracStr
}

// ParseUSDPrice parses an indicative USD price into micro-dollars.
func ParseUSDPrice(price string) (*big.Int, error) {
	return ParseToInteger(price, USDPriceDecimals)
}
