package commands

import (
	"errors"

	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/core/domain/model/labservice"
	"pipetgo/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateLabServiceCommandIsNotConstructed = errors.New(
	"UpdateLabServiceCommand must be created via NewUpdateLabServiceCommand constructor",
)

// UpdateLabServiceCommand represents a partial update to a catalog entry.
// Nil fields are left unchanged. Changing the pricing mode carries the price
// alongside it so the mode/price invariant is re-checked as one unit.
type UpdateLabServiceCommand struct { //nolint:recvcheck //using for validation
	actor              kernel.Actor
	serviceID          kernel.UUID
	name               *string
	description        *string
	pricingMode        *labservice.PricingMode
	pricePerUnit       *decimal.Decimal
	turnaroundDays     *int
	sampleRequirements *string
	active             *bool

	guard guard.ConstructorGuard
}

// NewUpdateLabServiceCommand creates a command to update a catalog entry.
func NewUpdateLabServiceCommand(
	actor kernel.Actor,
	serviceID kernel.UUID,
	name *string,
	description *string,
	pricingMode *labservice.PricingMode,
	pricePerUnit *decimal.Decimal,
	turnaroundDays *int,
	sampleRequirements *string,
	active *bool,
) (UpdateLabServiceCommand, error) {
	cmd := UpdateLabServiceCommand{
		name:               name,
		description:        description,
		pricingMode:        pricingMode,
		pricePerUnit:       pricePerUnit,
		turnaroundDays:     turnaroundDays,
		sampleRequirements: sampleRequirements,
		active:             active,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setServiceID(serviceID),
	); err != nil {
		return UpdateLabServiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateLabServiceCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLabServiceCommandIsNotConstructed)
}

// Actor returns the authenticated actor updating the service.
func (c UpdateLabServiceCommand) Actor() kernel.Actor {
	return c.actor
}

// ServiceID returns the id of the service to update.
func (c UpdateLabServiceCommand) ServiceID() kernel.UUID {
	return c.serviceID
}

// Name returns the new name, nil to keep the current one.
func (c UpdateLabServiceCommand) Name() *string {
	return c.name
}

// Description returns the new description, nil to keep the current one.
func (c UpdateLabServiceCommand) Description() *string {
	return c.description
}

// PricingMode returns the new pricing mode, nil to keep the current one.
func (c UpdateLabServiceCommand) PricingMode() *labservice.PricingMode {
	return c.pricingMode
}

// PricePerUnit returns the new catalog price, consulted when the pricing
// mode changes.
func (c UpdateLabServiceCommand) PricePerUnit() *decimal.Decimal {
	return c.pricePerUnit
}

// TurnaroundDays returns the new standard turnaround, nil to keep it.
func (c UpdateLabServiceCommand) TurnaroundDays() *int {
	return c.turnaroundDays
}

// SampleRequirements returns the new sample requirements, nil to keep them.
func (c UpdateLabServiceCommand) SampleRequirements() *string {
	return c.sampleRequirements
}

// Active returns the new availability flag, nil to keep it.
func (c UpdateLabServiceCommand) Active() *bool {
	return c.active
}

func (c *UpdateLabServiceCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateLabServiceCommand) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return err
	}

	c.serviceID = serviceID
	return nil
}
