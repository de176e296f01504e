package queries

import (
	"context"
	"time"

	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStaleQuoteOrdersQueryHandler finds quote requests no lab has answered
// within the configured age.
type GetStaleQuoteOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetStaleQuoteOrdersQueryHandler creates a handler for the stale quote
// request sweep.
func NewGetStaleQuoteOrdersQueryHandler(db *gorm.DB) GetStaleQuoteOrdersQueryHandler {
	return GetStaleQuoteOrdersQueryHandler{db: db}
}

// Handle returns the overdue quote requests, oldest first.
func (h GetStaleQuoteOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStaleQuoteOrdersQuery,
) ([]GetStaleQuoteOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(-query.OlderThan())

	sql := `
		SELECT
			o.id,
			l.name,
			o.created_at
		FROM orders o
		JOIN labs l ON l.id = o.lab_id
		WHERE o.status = ? AND o.created_at < ?
		ORDER BY o.created_at ASC
	`

	rows, err := h.db.WithContext(ctx).Raw(sql, int(order.QuoteRequested), cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stale := make([]GetStaleQuoteOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetStaleQuoteOrdersQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.LabName, &resp.CreatedAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		stale = append(stale, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stale, nil
}
