package commands

import (
	"errors"

	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/core/domain/model/order"
	"pipetgo/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a client's request to order a lab test.
// The pricing path (instant booking or quote flow) is not chosen here; it is
// decided by the pricing policy against the ordered service.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(actor, serviceID, sample, instructions, details, false)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor               kernel.Actor
	serviceID           kernel.UUID
	sampleDescription   string
	specialInstructions *string
	clientDetails       order.ClientDetails
	requestCustomQuote  bool

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to submit a new order. The actor and
// service id must be valid; the sample description and client details are
// validated by the order aggregate so that guard ordering stays observable.
func NewCreateOrderCommand(
	actor kernel.Actor,
	serviceID kernel.UUID,
	sampleDescription string,
	specialInstructions *string,
	clientDetails order.ClientDetails,
	requestCustomQuote bool,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		sampleDescription:   sampleDescription,
		specialInstructions: specialInstructions,
		clientDetails:       clientDetails,
		requestCustomQuote:  requestCustomQuote,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setServiceID(serviceID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the authenticated actor submitting the order.
func (c CreateOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// ServiceID returns the id of the service being ordered.
func (c CreateOrderCommand) ServiceID() kernel.UUID {
	return c.serviceID
}

// SampleDescription returns the client's description of the sample.
func (c CreateOrderCommand) SampleDescription() string {
	return c.sampleDescription
}

// SpecialInstructions returns optional handling instructions.
func (c CreateOrderCommand) SpecialInstructions() *string {
	return c.specialInstructions
}

// ClientDetails returns the contact snapshot for this order.
func (c CreateOrderCommand) ClientDetails() order.ClientDetails {
	return c.clientDetails
}

// RequestCustomQuote reports whether the client asked for a custom quote on a
// HYBRID service instead of instant booking.
func (c CreateOrderCommand) RequestCustomQuote() bool {
	return c.requestCustomQuote
}

func (c *CreateOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return err
	}

	c.serviceID = serviceID
	return nil
}
