package simplot

import "math/rand/v2"

// Flip returns true with probability p, using the process-wide random
// source. p <= 0 never returns true and p >= 1 always does.
func Flip(p float64) bool {
	return rand.Float64() < p
}

// FlipCoin is Flip(0.5).
func FlipCoin() bool {
	return Flip(0.5)
}

// FlipRand is Flip drawing from r, for reproducible simulations.
func FlipRand(r *rand.Rand, p float64) bool {
	return r.Float64() < p
}
