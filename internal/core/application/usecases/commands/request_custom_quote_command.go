package commands

import (
	"errors"

	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/pkg/guard"
)

var ErrRequestCustomQuoteCommandIsNotConstructed = errors.New(
	"RequestCustomQuoteCommand must be created via NewRequestCustomQuoteCommand constructor",
)

// RequestCustomQuoteCommand represents a client sending a PENDING order on a
// HYBRID service back to the quote flow, with a reason for the lab.
type RequestCustomQuoteCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Actor
	orderID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewRequestCustomQuoteCommand creates a command to request a custom quote.
// The reason's length rules live in the order aggregate, after the pricing
// mode and state checks.
func NewRequestCustomQuoteCommand(
	actor kernel.Actor,
	orderID kernel.UUID,
	reason string,
) (RequestCustomQuoteCommand, error) {
	cmd := RequestCustomQuoteCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
	); err != nil {
		return RequestCustomQuoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestCustomQuoteCommand) Validate() error {
	return c.guard.Validate(ErrRequestCustomQuoteCommandIsNotConstructed)
}

// Actor returns the authenticated actor requesting the custom quote.
func (c RequestCustomQuoteCommand) Actor() kernel.Actor {
	return c.actor
}

// OrderID returns the id of the order to re-quote.
func (c RequestCustomQuoteCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns the client's explanation for needing a custom quote.
func (c RequestCustomQuoteCommand) Reason() string {
	return c.reason
}

func (c *RequestCustomQuoteCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *RequestCustomQuoteCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
