package queries

import (
	"errors"
	"time"

	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/pkg/errs"
	"pipetgo/internal/pkg/guard"
)

var ErrGetStaleQuoteOrdersQueryIsNotConstructed = errors.New(
	"GetStaleQuoteOrdersQuery must be created via NewGetStaleQuoteOrdersQuery constructor",
)

// GetStaleQuoteOrdersQuery lists orders that have been waiting for a lab
// quote longer than a given age. Used by the background sweep, so it is not
// scoped to an actor.
type GetStaleQuoteOrdersQuery struct {
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewGetStaleQuoteOrdersQuery creates a query for quote requests older than
// the given age.
func NewGetStaleQuoteOrdersQuery(olderThan time.Duration) (GetStaleQuoteOrdersQuery, error) {
	if olderThan <= 0 {
		return GetStaleQuoteOrdersQuery{}, errs.NewValueIsInvalidError("olderThan")
	}

	return GetStaleQuoteOrdersQuery{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStaleQuoteOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStaleQuoteOrdersQueryIsNotConstructed)
}

// OlderThan returns the minimum age of a quote request to be reported.
func (q GetStaleQuoteOrdersQuery) OlderThan() time.Duration {
	return q.olderThan
}

// GetStaleQuoteOrdersQueryResponse is one overdue quote request with the lab
// that owes the quote.
type GetStaleQuoteOrdersQueryResponse struct {
	ID        kernel.UUID
	LabName   string
	CreatedAt time.Time
}
