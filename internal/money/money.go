// Package money provides the rounding rule applied to every derived monetary
// value on the bill.
package money

import "github.com/shopspring/decimal"

// Round2 rounds v to 2 decimal places, half away from zero.
//
// Rounding happens at each derived-value computation (taxes, discounts, total,
// equal shares), not only once at the end, so values already shown to callers
// are the exact values summed further.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
