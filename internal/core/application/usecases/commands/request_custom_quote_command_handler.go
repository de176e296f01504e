package commands

import (
	"context"

	"pipetgo/internal/core/domain/model/order"
	"pipetgo/internal/pkg/errs"
)

// RequestCustomQuoteCommandHandler handles a client sending an instantly
// booked order back to the quote flow. The ordered service is consulted for
// its pricing mode: only HYBRID services allow this move.
type RequestCustomQuoteCommandHandler struct {
	uowFactory OrderingUoWFactory
}

// NewRequestCustomQuoteCommandHandler creates a handler for custom quote requests.
func NewRequestCustomQuoteCommandHandler(uowFactory OrderingUoWFactory) RequestCustomQuoteCommandHandler {
	return RequestCustomQuoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the custom quote request.
//
// Only clients may request, and only on their own orders. The aggregate
// checks the pricing mode before the state, so a FIXED service's order is
// refused as forbidden even when its status would also refuse the move.
// Persistence is compare-and-set on the loaded status.
func (h *RequestCustomQuoteCommandHandler) Handle(ctx context.Context, cmd RequestCustomQuoteCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().IsClient() {
		return nil, errs.NewForbiddenError("request custom quote", "only clients can request custom quotes")
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

	svc, err := uow.LabServiceRepository().Get(ctx, aggregate.ServiceID())
	if err != nil {
		return nil, err
	}

	expected := aggregate.Status()
	if err = aggregate.RequestCustomQuote(svc.PricingMode(), cmd.Reason()); err != nil {
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
