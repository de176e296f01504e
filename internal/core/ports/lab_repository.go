package ports

import (
	"context"

	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/core/domain/model/lab"
)

// LabRepository defines the persistence contract for labs.
type LabRepository interface {
	// Add persists a new lab.
	Add(ctx context.Context, aggregate *lab.Lab) error

	// Get retrieves a lab by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*lab.Lab, error)
}
