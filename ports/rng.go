package ports

import (
	"context"
	"math/rand/v2"
)

// RNGPort provides seeded random number generation for deterministic generation
type RNGPort interface {
	// SeededStream creates a deterministic random number generator for a named operation
	SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error)

	// CaseSeed derives the seed for one case of a batch. The same batch
	// seed and index always yield the same case seed, so any case can be
	// regenerated in isolation.
	CaseSeed(ctx context.Context, batchSeed int64, index int) int64

	// ValidateSeed ensures the seed produces expected deterministic results
	ValidateSeed(ctx context.Context, name string, seed int64, expected []float64) error
}
