package commands

import (
	"context"
	"time"

	"pipetgo/internal/core/domain/model/order"
	"pipetgo/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles fulfillment progress and
// cancellation.
//
// Who may move what:
//   - lab administrators acknowledge, start and complete orders placed with
//     their own lab
//   - cancellation is open to the order's client as well as the lab's
//     administrator, from any non-terminal status
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update. Ownership scoping folds someone else's
// order into not found; persistence is compare-and-set on the loaded status.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.authorize(cmd); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	var aggregate *order.Order
	var err error
	if cmd.Actor().IsClient() {
		aggregate, err = repo.GetForClient(ctx, cmd.OrderID(), cmd.Actor().UserID())
	} else {
		aggregate, err = repo.GetForLabOwner(ctx, cmd.OrderID(), cmd.Actor().UserID())
	}
	if err != nil {
		return nil, err
	}

	expected := aggregate.Status()
	if err = h.apply(aggregate, cmd.NewStatus()); err != nil {
		return nil, err
	}

	if err = saveIfStatus(ctx, repo, aggregate, expected); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func (h *UpdateOrderStatusCommandHandler) authorize(cmd UpdateOrderStatusCommand) error {
	if cmd.NewStatus() == order.Cancelled {
		if !cmd.Actor().IsClient() && !cmd.Actor().IsLabAdmin() {
			return errs.NewForbiddenError("cancel order", "only the client or the lab can cancel an order")
		}
		return nil
	}

	if !cmd.Actor().IsLabAdmin() {
		return errs.NewForbiddenError("update order status", "only lab administrators can progress order fulfillment")
	}
	return nil
}

func (h *UpdateOrderStatusCommandHandler) apply(aggregate *order.Order, newStatus order.Status) error {
	switch newStatus {
	case order.Acknowledged:
		return aggregate.Acknowledge(time.Now())
	case order.InProgress:
		return aggregate.Start()
	case order.Completed:
		return aggregate.Complete(time.Now())
	case order.Cancelled:
		return aggregate.Cancel()
	default:
		// Unreachable: the command constructor rejects other targets.
		return errs.NewValueIsInvalidError("status")
	}
}
