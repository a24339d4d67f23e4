package validate

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// QuantizeMoney rounds a monetary value to exactly two decimal places,
// ties away from zero (1.005 -> 1.01, -1.005 -> -1.01). Every monetary
// value must pass through here before arithmetic, comparison, or display.
func QuantizeMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// EnsureDecimal parses text as an exact base-10 decimal. Binary floating
// point must never carry monetary values, so parsing goes straight from
// the string representation.
func EnsureDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}

// Money renders a quantized monetary value with exactly two fractional
// digits. decimal.String strips trailing zeros and must not be used for
// audit output.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
