package commands

import (
	"context"
	"time"

	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/core/domain/model/order"
	"pipetgo/internal/core/domain/services"
	"pipetgo/internal/pkg/errs"
)

// CreateOrderCommandHandler handles order submission. The pricing policy
// decides whether the order books instantly at the catalog price or enters
// the quote flow.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("order %s starts in %s", created.ID(), created.Status())
type CreateOrderCommandHandler struct {
	uowFactory    OrderingUoWFactory
	pricingPolicy services.PricingPolicy
}

// NewCreateOrderCommandHandler creates a handler for order submission.
func NewCreateOrderCommandHandler(uowFactory OrderingUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:    uowFactory,
		pricingPolicy: services.NewPricingPolicy(),
	}
}

// Handle processes the order submission.
//
// Only clients may order. The ordered service must exist and be active;
// inactive services are reported as not found, matching what the public
// catalog shows. The created order is returned in its initial status.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().IsClient() {
		return nil, errs.NewForbiddenError("create order", "only clients can submit orders")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	svc, err := uow.LabServiceRepository().Get(ctx, cmd.ServiceID())
	if err != nil {
		return nil, err
	}
	if !svc.IsActive() {
		return nil, errs.NewObjectNotFoundError("serviceId", cmd.ServiceID())
	}

	initialStatus, quotedPrice, quotedAt, err := h.pricingPolicy.Evaluate(svc, cmd.RequestCustomQuote(), time.Now())
	if err != nil {
		return nil, err
	}

	created, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.Actor().UserID(),
		svc.LabID(),
		svc.ID(),
		cmd.SampleDescription(),
		cmd.SpecialInstructions(),
		cmd.ClientDetails(),
		initialStatus,
		quotedPrice,
		quotedAt,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
