package gen

import (
	"math/rand"
	"time"
)

// RNG encapsulates an owned pseudo-random source and its seed.
// It is not safe for concurrent use; give each goroutine its own.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates an RNG with the specified seed. The same seed and
// draw order reproduce the same dataset bit for bit.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec
		seed: seed,
	}
}

// NewUnseededRNG creates an RNG seeded from the wall clock, for
// callers that do not need reproducibility.
func NewUnseededRNG() *RNG {
	return NewRNG(time.Now().UnixNano())
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 { return r.seed }

// Float64 returns a pseudo-random number in [0, 1).
func (r *RNG) Float64() float64 { return r.rand.Float64() }

// Uniform returns a pseudo-random number in [lo, hi).
func (r *RNG) Uniform(lo, hi float64) float64 {
	return lo + r.rand.Float64()*(hi-lo)
}

// Gauss returns a normally distributed value with the given mean and
// standard deviation.
func (r *RNG) Gauss(mean, sigma float64) float64 {
	return mean + r.rand.NormFloat64()*sigma
}

// Intn returns a non-negative pseudo-random number in [0, n).
func (r *RNG) Intn(n int) int { return r.rand.Intn(n) }
