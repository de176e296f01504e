package commands

import (
	"context"
	"time"

	"pipetgo/internal/core/domain/model/order"
	"pipetgo/internal/pkg/errs"
)

// ProvideQuoteCommandHandler handles a lab administrator quoting an order.
//
// Example:
//
//	handler := NewProvideQuoteCommandHandler(uowFactory)
//	quoted, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("quote failed: %w", err)
//	}
type ProvideQuoteCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewProvideQuoteCommandHandler creates a handler for quote provision.
func NewProvideQuoteCommandHandler(uowFactory OrderUoWFactory) ProvideQuoteCommandHandler {
	return ProvideQuoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quote.
//
// Only lab administrators may quote, and only orders placed with their own
// lab; an order belonging to someone else's lab is reported as not found.
// Persistence is compare-and-set on the loaded status, so two administrators
// quoting the same order concurrently cannot silently overwrite each other.
func (h *ProvideQuoteCommandHandler) Handle(ctx context.Context, cmd ProvideQuoteCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().IsLabAdmin() {
		return nil, errs.NewForbiddenError("provide quote", "only lab administrators can provide quotes")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.GetForLabOwner(ctx, cmd.OrderID(), cmd.Actor().UserID())
	if err != nil {
		return nil, err
	}

	expected := aggregate.Status()
	if err = aggregate.ProvideQuote(cmd.Price(), cmd.QuoteNotes(), cmd.EstimatedTurnaroundDays(), time.Now()); err != nil {
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
