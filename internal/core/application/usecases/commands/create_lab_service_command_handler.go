package commands

import (
	"context"

	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/core/domain/model/labservice"
	"pipetgo/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CreateLabServiceCommandHandler handles publishing a new catalog entry.
type CreateLabServiceCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateLabServiceCommandHandler creates a handler for catalog publication.
func NewCreateLabServiceCommandHandler(uowFactory CatalogUoWFactory) CreateLabServiceCommandHandler {
	return CreateLabServiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the publication.
//
// Only lab administrators may publish, and only into a lab they own; a lab
// owned by someone else is reported as not found. The new service starts
// active.
func (h *CreateLabServiceCommandHandler) Handle(ctx context.Context, cmd CreateLabServiceCommand) (*labservice.LabService, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().IsLabAdmin() {
		return nil, errs.NewForbiddenError("create lab service", "only lab administrators can publish services")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	owned, err := uow.LabRepository().Get(ctx, cmd.LabID())
	if err != nil {
		return nil, err
	}
	if !owned.IsOwnedBy(cmd.Actor().UserID()) {
		return nil, errs.NewObjectNotFoundError("labId", cmd.LabID())
	}

	price, err := moneyFromDecimal(cmd.PricePerUnit())
	if err != nil {
		return nil, err
	}

	svc, err := labservice.NewLabService(
		kernel.NewUUID(),
		cmd.LabID(),
		cmd.Name(),
		cmd.Category(),
		cmd.PricingMode(),
		price,
	)
	if err != nil {
		return nil, err
	}

	if cmd.Description() != nil {
		if err = svc.SetDescription(*cmd.Description()); err != nil {
			return nil, err
		}
	}
	if cmd.TurnaroundDays() != nil {
		if err = svc.SetTurnaroundDays(*cmd.TurnaroundDays()); err != nil {
			return nil, err
		}
	}
	if cmd.SampleRequirements() != nil {
		if err = svc.SetSampleRequirements(*cmd.SampleRequirements()); err != nil {
			return nil, err
		}
	}

	if err = uow.LabServiceRepository().Add(ctx, svc); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return svc, nil
}

func moneyFromDecimal(d *decimal.Decimal) (*kernel.Money, error) {
	if d == nil {
		return nil, nil
	}
	m, err := kernel.NewMoney(*d)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
