package queries

import (
	"errors"

	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/core/domain/model/order"
	"pipetgo/internal/pkg/guard"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// GetOrderStatsQuery retrieves per-status order counts for an actor's scope.
// Dashboards use it to show how much work sits in each lifecycle stage.
type GetOrderStatsQuery struct {
	actor kernel.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a query counting an actor's orders by status.
func NewGetOrderStatsQuery(actor kernel.Actor) (GetOrderStatsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrderStatsQuery{}, err
	}

	return GetOrderStatsQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// Actor returns the actor whose orders are counted.
func (q GetOrderStatsQuery) Actor() kernel.Actor {
	return q.actor
}

// GetOrderStatsQueryResponse carries the total and the per-status counts.
// Statuses with no orders are present with a zero count.
type GetOrderStatsQueryResponse struct {
	Total    int64
	ByStatus map[order.Status]int64
}
