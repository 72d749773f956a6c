package gen

import (
	"math"
	"math/rand"
)

// Draw helpers. Every generator stage goes through these so the draw sequence
// stays auditable: one call, one (or for weightedPick exactly one) underlying
// RNG consumption. Changing a helper changes the reproducibility contract.

// randInt draws an integer uniformly from [lo, hi], both ends inclusive.
func randInt(r *rand.Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

// uniform draws a float uniformly from [lo, hi).
func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// pick draws one element uniformly.
func pick[T any](r *rand.Rand, items []T) T {
	return items[r.Intn(len(items))]
}

// weightedPick draws one element with probability proportional to its weight,
// consuming a single float draw walked against the cumulative weight sum.
// Weights need not sum to 1.
func weightedPick[T any](r *rand.Rand, items []T, weights []float64) T {
	var total float64
	for _, w := range weights {
		total += w
	}
	target := r.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if target < cum {
			return items[i]
		}
	}
	// Float accumulation can leave target a hair above the final cum.
	return items[len(items)-1]
}

// round2 rounds to two decimals; all money amounts are stored at cent
// precision.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
