// Package money fixes the rounding policy for every monetary amount in the
// system: two decimal places, half rounded away from zero, applied at each
// aggregation boundary rather than once at output time.
package money

import "github.com/shopspring/decimal"

// Round2 rounds to 2 decimal places, half away from zero.
// Round2(833.325) = 833.33, Round2(833.335) = 833.34.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Format renders an amount with exactly two decimal places, as required by
// the payment and accounting CSV schemas.
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}
