package commands

import (
	"context"

	"pipetgo/internal/core/domain/model/order"
	"pipetgo/internal/core/ports"
	"pipetgo/internal/pkg/errs"
)

// saveIfStatus persists the aggregate only if its stored status is still the
// one the handler loaded. When another writer got there first the current
// status is reloaded so the conflict names both sides; no retry is attempted,
// the caller's client re-reads and decides.
func saveIfStatus(ctx context.Context, repo ports.OrderRepository, aggregate *order.Order, expected order.Status) error {
	applied, err := repo.UpdateIfStatus(ctx, aggregate, expected)
	if err != nil {
		return err
	}
	if applied {
		return nil
	}

	current, err := repo.Get(ctx, aggregate.ID())
	if err != nil {
		return errs.NewConflictErrorWithCause("status", expected.String(), order.Unknown.String(), err)
	}
	return errs.NewConflictError("status", expected.String(), current.Status().String())
}
