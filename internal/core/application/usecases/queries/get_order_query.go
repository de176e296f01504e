package queries

import (
	"errors"
	"time"

	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/core/domain/model/order"
	"pipetgo/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order in full detail. Visibility follows the
// same scoping as the listing: an order outside the actor's scope is
// reported as not found, never as forbidden.
type GetOrderQuery struct {
	actor   kernel.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query fetching one order for an actor.
func NewGetOrderQuery(actor kernel.Actor, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// Actor returns the actor fetching the order.
func (q GetOrderQuery) Actor() kernel.Actor {
	return q.actor
}

// OrderID returns the id of the fetched order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the full order detail, including the quote fields
// and every lifecycle timestamp.
type GetOrderQueryResponse struct {
	ID                      kernel.UUID
	Status                  order.Status
	ServiceName             string
	LabName                 string
	SampleDescription       string
	SpecialInstructions     *string
	QuotedPrice             *decimal.Decimal
	QuotedAt                *time.Time
	QuoteNotes              *string
	EstimatedTurnaroundDays *int
	QuoteRejectedReason     *string
	QuoteApprovedAt         *time.Time
	QuoteRejectedAt         *time.Time
	AcknowledgedAt          *time.Time
	CompletedAt             *time.Time
	CreatedAt               time.Time
}
