package commands

import (
	"errors"

	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrProvideQuoteCommandIsNotConstructed = errors.New(
	"ProvideQuoteCommand must be created via NewProvideQuoteCommand constructor",
)

// ProvideQuoteCommand represents a lab administrator quoting a price for an
// order awaiting one. The price and optional fields are carried raw; the
// order aggregate validates them after the state check, so a stale quote
// attempt reports the status conflict rather than a payload error.
type ProvideQuoteCommand struct { //nolint:recvcheck //using for validation
	actor                   kernel.Actor
	orderID                 kernel.UUID
	price                   decimal.Decimal
	quoteNotes              *string
	estimatedTurnaroundDays *int

	guard guard.ConstructorGuard
}

// NewProvideQuoteCommand creates a command to quote an order.
func NewProvideQuoteCommand(
	actor kernel.Actor,
	orderID kernel.UUID,
	price decimal.Decimal,
	quoteNotes *string,
	estimatedTurnaroundDays *int,
) (ProvideQuoteCommand, error) {
	cmd := ProvideQuoteCommand{
		price:                   price,
		quoteNotes:              quoteNotes,
		estimatedTurnaroundDays: estimatedTurnaroundDays,
		guard:                   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
	); err != nil {
		return ProvideQuoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProvideQuoteCommand) Validate() error {
	return c.guard.Validate(ErrProvideQuoteCommandIsNotConstructed)
}

// Actor returns the authenticated actor quoting the order.
func (c ProvideQuoteCommand) Actor() kernel.Actor {
	return c.actor
}

// OrderID returns the id of the order being quoted.
func (c ProvideQuoteCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Price returns the quoted price.
func (c ProvideQuoteCommand) Price() decimal.Decimal {
	return c.price
}

// QuoteNotes returns the lab's optional notes on the quote.
func (c ProvideQuoteCommand) QuoteNotes() *string {
	return c.quoteNotes
}

// EstimatedTurnaroundDays returns the optional quoted turnaround.
func (c ProvideQuoteCommand) EstimatedTurnaroundDays() *int {
	return c.estimatedTurnaroundDays
}

func (c *ProvideQuoteCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ProvideQuoteCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
