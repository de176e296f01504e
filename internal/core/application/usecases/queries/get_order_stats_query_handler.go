package queries

import (
	"context"

	"pipetgo/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler aggregates order counts per lifecycle status.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatsQueryHandler creates a handler for order statistics.
func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle executes the aggregation, scoped like the order listing.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	sql := `
		SELECT o.status, COUNT(*)
		FROM orders o
	`
	var args []any

	switch {
	case query.Actor().IsClient():
		sql += ` WHERE o.client_id = ?`
		args = append(args, query.Actor().UserID().Bytes())
	case query.Actor().IsLabAdmin():
		sql += ` JOIN labs l ON l.id = o.lab_id WHERE l.owner_id = ?`
		args = append(args, query.Actor().UserID().Bytes())
	}

	sql += ` GROUP BY o.status`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}
	defer rows.Close()

	resp := GetOrderStatsQueryResponse{
		ByStatus: make(map[order.Status]int64),
	}
	for _, s := range []order.Status{
		order.QuoteRequested, order.QuoteProvided, order.QuoteRejected,
		order.Pending, order.Acknowledged, order.InProgress,
		order.Completed, order.Cancelled,
	} {
		resp.ByStatus[s] = 0
	}

	for rows.Next() {
		var status int
		var count int64
		if err = rows.Scan(&status, &count); err != nil {
			return GetOrderStatsQueryResponse{}, err
		}
		resp.ByStatus[order.Status(status)] = count
		resp.Total += count
	}

	if err = rows.Err(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	return resp, nil
}
