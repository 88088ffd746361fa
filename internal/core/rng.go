package core

import "math/rand"

//go:generate go tool mockgen -destination=./mocks/rng_mock.go -package=mocks . RNG

// RNG is the random source games draw from.
// *rand.Rand satisfies it; tests substitute a scripted mock.
type RNG interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Intn returns a uniform value in [0, n). n must be positive.
	Intn(n int) int
}

// NewRNG returns a math/rand source seeded with seed.
func NewRNG(seed int64) RNG {
	return rand.New(rand.NewSource(seed))
}

// UniformF draws a uniform value in [lo, hi).
func UniformF(rng RNG, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// UniformInt draws a uniform integer in [lo, hi).
// Returns lo without consuming randomness when the range is empty.
func UniformInt(rng RNG, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo)
}
