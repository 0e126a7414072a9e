package quote

import (
	"math/rand/v2"

	"github.com/shopspring/decimal"
)

// Noise returns a multiplicative jitter factor applied to resolved prices to
// simulate intraday movement. Implementations must stay within [0.99, 1.01].
// The function is injected rather than read from a global random source so
// valuation tests can pin exact values.
type Noise func() decimal.Decimal

// NoNoise returns 1, disabling jitter. Used in tests and deterministic runs.
func NoNoise() decimal.Decimal { return decimal.NewFromInt(1) }

// SeededNoise returns a Noise producing factors in [0.99, 1.01) from a
// deterministic PRNG seeded with seed.
func SeededNoise(seed uint64) Noise {
	rng := rand.New(rand.NewPCG(seed, seed))
	return func() decimal.Decimal {
		return noiseFactor(rng.Float64())
	}
}

// RandomNoise returns a Noise backed by the shared math/rand/v2 source.
func RandomNoise() Noise {
	return func() decimal.Decimal {
		return noiseFactor(rand.Float64())
	}
}

func noiseFactor(f float64) decimal.Decimal {
	// f in [0,1) maps to [0.99, 1.01)
	return decimal.NewFromFloat(0.99 + f*0.02)
}
