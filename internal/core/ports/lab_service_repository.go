package ports

import (
	"context"

	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/core/domain/model/labservice"
)

// LabServiceRepository defines the persistence contract for catalog entries.
type LabServiceRepository interface {
	// Add persists a new lab service to the catalog.
	Add(ctx context.Context, service *labservice.LabService) error

	// Update persists changes to an existing lab service.
	Update(ctx context.Context, service *labservice.LabService) error

	// Get retrieves a lab service by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*labservice.LabService, error)

	// GetForLabOwner retrieves the service only if its lab is owned by the
	// given user. A wrong owner is indistinguishable from a missing service.
	GetForLabOwner(ctx context.Context, id kernel.UUID, ownerID kernel.UUID) (*labservice.LabService, error)
}
