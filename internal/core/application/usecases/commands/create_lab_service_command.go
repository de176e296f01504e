package commands

import (
	"errors"

	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/core/domain/model/labservice"
	"pipetgo/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateLabServiceCommandIsNotConstructed = errors.New(
	"CreateLabServiceCommand must be created via NewCreateLabServiceCommand constructor",
)

// CreateLabServiceCommand represents a lab administrator publishing a new
// catalog entry for their lab.
type CreateLabServiceCommand struct { //nolint:recvcheck //using for validation
	actor              kernel.Actor
	labID              kernel.UUID
	name               string
	description        *string
	category           string
	pricingMode        labservice.PricingMode
	pricePerUnit       *decimal.Decimal
	turnaroundDays     *int
	sampleRequirements *string

	guard guard.ConstructorGuard
}

// NewCreateLabServiceCommand creates a command to publish a catalog entry.
// Name, category and the mode/price invariant are validated by the
// LabService entity.
func NewCreateLabServiceCommand(
	actor kernel.Actor,
	labID kernel.UUID,
	name string,
	description *string,
	category string,
	pricingMode labservice.PricingMode,
	pricePerUnit *decimal.Decimal,
	turnaroundDays *int,
	sampleRequirements *string,
) (CreateLabServiceCommand, error) {
	cmd := CreateLabServiceCommand{
		name:               name,
		description:        description,
		category:           category,
		pricingMode:        pricingMode,
		pricePerUnit:       pricePerUnit,
		turnaroundDays:     turnaroundDays,
		sampleRequirements: sampleRequirements,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setLabID(labID),
	); err != nil {
		return CreateLabServiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLabServiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateLabServiceCommandIsNotConstructed)
}

// Actor returns the authenticated actor publishing the service.
func (c CreateLabServiceCommand) Actor() kernel.Actor {
	return c.actor
}

// LabID returns the id of the lab the service belongs to.
func (c CreateLabServiceCommand) LabID() kernel.UUID {
	return c.labID
}

// Name returns the service name.
func (c CreateLabServiceCommand) Name() string {
	return c.name
}

// Description returns the optional service description.
func (c CreateLabServiceCommand) Description() *string {
	return c.description
}

// Category returns the service category.
func (c CreateLabServiceCommand) Category() string {
	return c.category
}

// PricingMode returns the requested pricing mode.
func (c CreateLabServiceCommand) PricingMode() labservice.PricingMode {
	return c.pricingMode
}

// PricePerUnit returns the catalog price, nil for quote-only services.
func (c CreateLabServiceCommand) PricePerUnit() *decimal.Decimal {
	return c.pricePerUnit
}

// TurnaroundDays returns the optional standard turnaround.
func (c CreateLabServiceCommand) TurnaroundDays() *int {
	return c.turnaroundDays
}

// SampleRequirements returns the optional sample handling requirements.
func (c CreateLabServiceCommand) SampleRequirements() *string {
	return c.sampleRequirements
}

func (c *CreateLabServiceCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateLabServiceCommand) setLabID(labID kernel.UUID) error {
	if err := labID.Validate(); err != nil {
		return err
	}

	c.labID = labID
	return nil
}
