package billing

import "math/rand/v2"

// TaxRate is the fixed tax rate applied to the order subtotal.
const TaxRate = 0.19

// DiscountRates are the candidate discount rates, one of which is sampled on
// every recompute.
var DiscountRates = []float64{0.05, 0.10, 0.15}

// RateSource supplies the discount rate for a totals recomputation.
//
// The default source is random, so the discount rate (and with it the
// taxes/discount split) can change between rounds of the same open order.
// Tests must inject a deterministic source.
type RateSource interface {
	DiscountRate() float64
}

type randomRates struct{}

// RandomRates samples uniformly from DiscountRates on every call.
func RandomRates() RateSource {
	return randomRates{}
}

func (randomRates) DiscountRate() float64 {
	return DiscountRates[rand.IntN(len(DiscountRates))]
}

// StaticRates always returns the given rate. Intended for tests.
func StaticRates(rate float64) RateSource {
	return staticRates(rate)
}

type staticRates float64

func (s staticRates) DiscountRate() float64 { return float64(s) }
