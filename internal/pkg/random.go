package pkg

import "math/rand/v2"

// RNG - source of uniform random integers shared by the game engines.
type RNG interface {
	// IntN returns a non-negative random int in [0, n). It panics if n <= 0.
	IntN(n int) int
}

type stdRNG struct{}

func (stdRNG) IntN(n int) int { return rand.IntN(n) } //nolint: gosec // game randomness, not security

// DefaultRNG - returns the process-wide auto-seeded generator.
func DefaultRNG() RNG {
	return stdRNG{}
}
