package commands

import (
	"context"

	"pipetgo/internal/core/domain/model/labservice"
	"pipetgo/internal/pkg/errs"
)

// UpdateLabServiceCommandHandler handles partial updates to a catalog entry.
type UpdateLabServiceCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdateLabServiceCommandHandler creates a handler for catalog updates.
func NewUpdateLabServiceCommandHandler(uowFactory CatalogUoWFactory) UpdateLabServiceCommandHandler {
	return UpdateLabServiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update.
//
// Only lab administrators may update, and only services of a lab they own;
// someone else's service is reported as not found. A pricing change is
// applied as one unit so the mode/price invariant holds throughout.
func (h *UpdateLabServiceCommandHandler) Handle(ctx context.Context, cmd UpdateLabServiceCommand) (*labservice.LabService, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().IsLabAdmin() {
		return nil, errs.NewForbiddenError("update lab service", "only lab administrators can update services")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.LabServiceRepository()
	svc, err := repo.GetForLabOwner(ctx, cmd.ServiceID(), cmd.Actor().UserID())
	if err != nil {
		return nil, err
	}

	if err = h.apply(svc, cmd); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, svc); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return svc, nil
}

func (h *UpdateLabServiceCommandHandler) apply(svc *labservice.LabService, cmd UpdateLabServiceCommand) error {
	if cmd.Name() != nil {
		if err := svc.Rename(*cmd.Name()); err != nil {
			return err
		}
	}
	if cmd.Description() != nil {
		if err := svc.SetDescription(*cmd.Description()); err != nil {
			return err
		}
	}

	if cmd.PricingMode() != nil || cmd.PricePerUnit() != nil {
		mode := svc.PricingMode()
		if cmd.PricingMode() != nil {
			mode = *cmd.PricingMode()
		}
		price := svc.PricePerUnit()
		if cmd.PricePerUnit() != nil {
			newPrice, err := moneyFromDecimal(cmd.PricePerUnit())
			if err != nil {
				return err
			}
			price = newPrice
		}
		if err := svc.Reprice(mode, price); err != nil {
			return err
		}
	}

	if cmd.TurnaroundDays() != nil {
		if err := svc.SetTurnaroundDays(*cmd.TurnaroundDays()); err != nil {
			return err
		}
	}
	if cmd.SampleRequirements() != nil {
		if err := svc.SetSampleRequirements(*cmd.SampleRequirements()); err != nil {
			return err
		}
	}
	if cmd.Active() != nil {
		if *cmd.Active() {
			svc.Activate()
		} else {
			svc.Deactivate()
		}
	}
	return nil
}
