// Package ports defines repository interfaces for the marketplace domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Retrieval is ownership-scoped: GetForClient and GetForLabOwner return the
// order only when it belongs to the given party, and report not-found
// otherwise. Callers never learn whether an order they don't own exists.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier without an
	// ownership check. Reserved for platform-level access and conflict
	// reporting; request handling goes through the scoped variants.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForClient retrieves the order only if it belongs to the given
	// client. A wrong owner is indistinguishable from a missing order.
	GetForClient(ctx context.Context, id kernel.UUID, clientID kernel.UUID) (*order.Order, error)

	// GetForLabOwner retrieves the order only if it was placed with a lab
	// owned by the given user. A wrong owner is indistinguishable from a
	// missing order.
	GetForLabOwner(ctx context.Context, id kernel.UUID, ownerID kernel.UUID) (*order.Order, error)

	// UpdateIfStatus persists the aggregate's current state only if the
	// stored row still carries expectedStatus. Returns false with a nil
	// error when another writer moved the order first; the caller decides
	// how to report the conflict.
	UpdateIfStatus(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) (bool, error)
}
