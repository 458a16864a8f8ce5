package ports

import (
	"context"

	"bloodgas/domain/abg"
	"bloodgas/domain/core"
)

// ResultRepository defines the interface for blood gas result storage
type ResultRepository interface {
	// Save persists a generated result
	Save(ctx context.Context, result abg.BloodGasResult) error

	// Get retrieves a result by ID
	Get(ctx context.Context, id core.ResultID) (*abg.BloodGasResult, error)

	// ListRecent returns the most recently generated results, newest first
	ListRecent(ctx context.Context, limit int) ([]abg.BloodGasResult, error)

	// ListByBatch returns all results belonging to a batch
	ListByBatch(ctx context.Context, batchID core.BatchID) ([]abg.BloodGasResult, error)

	// Delete removes a result
	Delete(ctx context.Context, id core.ResultID) error
}
