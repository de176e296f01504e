package commands

import (
	"context"
	"time"

	"pipetgo/internal/core/domain/model/order"
	"pipetgo/internal/pkg/errs"
)

// DecideQuoteCommandHandler handles a client's decision on a provided quote:
// approval moves the order to PENDING, rejection to QUOTE_REJECTED.
type DecideQuoteCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDecideQuoteCommandHandler creates a handler for quote decisions.
func NewDecideQuoteCommandHandler(uowFactory OrderUoWFactory) DecideQuoteCommandHandler {
	return DecideQuoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the decision.
//
// Only clients may decide, and only on their own orders; someone else's order
// is reported as not found. Persistence is compare-and-set on the loaded
// status.
func (h *DecideQuoteCommandHandler) Handle(ctx context.Context, cmd DecideQuoteCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().IsClient() {
		return nil, errs.NewForbiddenError("decide quote", "only clients can approve or reject quotes")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.GetForClient(ctx, cmd.OrderID(), cmd.Actor().UserID())
	if err != nil {
		return nil, err
	}

	expected := aggregate.Status()
	if cmd.Approved() {
		err = aggregate.ApproveQuote(time.Now())
	} else {
		err = aggregate.RejectQuote(cmd.RejectionReason(), time.Now())
	}
	if err != nil {
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
