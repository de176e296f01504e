package commands

import (
	"errors"

	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/pkg/guard"
)

var ErrDecideQuoteCommandIsNotConstructed = errors.New(
	"DecideQuoteCommand must be created via NewDecideQuoteCommand constructor",
)

// DecideQuoteCommand represents a client accepting or declining a provided
// quote. A rejection carries a reason; its length rules live in the order
// aggregate so the state check runs first.
type DecideQuoteCommand struct { //nolint:recvcheck //using for validation
	actor           kernel.Actor
	orderID         kernel.UUID
	approved        bool
	rejectionReason string

	guard guard.ConstructorGuard
}

// NewDecideQuoteCommand creates a command to decide on a quote. The
// rejectionReason is only consulted when approved is false.
func NewDecideQuoteCommand(
	actor kernel.Actor,
	orderID kernel.UUID,
	approved bool,
	rejectionReason string,
) (DecideQuoteCommand, error) {
	cmd := DecideQuoteCommand{
		approved:        approved,
		rejectionReason: rejectionReason,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
	); err != nil {
		return DecideQuoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DecideQuoteCommand) Validate() error {
	return c.guard.Validate(ErrDecideQuoteCommandIsNotConstructed)
}

// Actor returns the authenticated actor deciding on the quote.
func (c DecideQuoteCommand) Actor() kernel.Actor {
	return c.actor
}

// OrderID returns the id of the quoted order.
func (c DecideQuoteCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Approved reports whether the client accepted the quote.
func (c DecideQuoteCommand) Approved() bool {
	return c.approved
}

// RejectionReason returns why the client declined, empty on approval.
func (c DecideQuoteCommand) RejectionReason() string {
	return c.rejectionReason
}

func (c *DecideQuoteCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *DecideQuoteCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
