// Package queries contains read-only operations over the marketplace data.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return plain response structs, bypassing the
// aggregates.
package queries

import (
	"errors"
	"time"

	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/core/domain/model/order"
	"pipetgo/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves the orders visible to an actor, newest first.
// Clients see their own orders, lab administrators the orders of labs they
// own, platform administrators everything. An optional status narrows the
// listing.
//
// Example:
//
//	query, _ := NewGetOrdersQuery(actor, nil)
//	handler := NewGetOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("found %d orders\n", len(orders))
type GetOrdersQuery struct {
	actor        kernel.Actor
	statusFilter *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query listing an actor's orders, optionally
// narrowed to one status.
func NewGetOrdersQuery(actor kernel.Actor, statusFilter *order.Status) (GetOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	if statusFilter != nil {
		if err := statusFilter.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		actor:        actor,
		statusFilter: statusFilter,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Actor returns the actor whose orders are listed.
func (q GetOrdersQuery) Actor() kernel.Actor {
	return q.actor
}

// StatusFilter returns the optional status the listing is narrowed to.
func (q GetOrdersQuery) StatusFilter() *order.Status {
	return q.statusFilter
}

// GetOrdersQueryResponse is one row of the order listing: the order's key
// lifecycle fields joined with the service and lab names for display.
type GetOrdersQueryResponse struct {
	ID          kernel.UUID
	Status      order.Status
	ServiceName string
	LabName     string
	QuotedPrice *decimal.Decimal
	QuotedAt    *time.Time
	CreatedAt   time.Time
}
