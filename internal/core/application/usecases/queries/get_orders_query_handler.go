package queries

import (
	"context"
	"time"

	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders from the database, scoped to the
// querying actor.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing. Visibility scoping happens in SQL, so an
// actor never receives rows they could not fetch individually.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.id,
			o.status,
			s.name,
			l.name,
			o.quoted_price,
			o.quoted_at,
			o.created_at
		FROM orders o
		JOIN lab_services s ON s.id = o.service_id
		JOIN labs l ON l.id = o.lab_id
	`
	var args []any

	switch {
	case query.Actor().IsClient():
		sql += ` WHERE o.client_id = ?`
		args = append(args, query.Actor().UserID().Bytes())
	case query.Actor().IsLabAdmin():
		sql += ` WHERE l.owner_id = ?`
		args = append(args, query.Actor().UserID().Bytes())
	default:
		sql += ` WHERE TRUE`
	}

	if query.StatusFilter() != nil {
		sql += ` AND o.status = ?`
		args = append(args, *query.StatusFilter())
	}

	sql += ` ORDER BY o.created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetOrdersQueryResponse
		var id uuid.UUID
		var status int
		var price decimal.NullDecimal
		var quotedAt *time.Time

		err = rows.Scan(
			&id,
			&status,
			&resp.ServiceName,
			&resp.LabName,
			&price,
			&quotedAt,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Status = order.Status(status)
		if price.Valid {
			resp.QuotedPrice = &price.Decimal
		}
		resp.QuotedAt = quotedAt
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
