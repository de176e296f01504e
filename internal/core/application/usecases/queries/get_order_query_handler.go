package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/core/domain/model/order"
	"pipetgo/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler fetches one order's full detail from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order fetches.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the fetch. The ownership predicate is part of the SQL, so
// a row outside the actor's scope scans as no row at all.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	sqlText := `
		SELECT
			o.id,
			o.status,
			s.name,
			l.name,
			o.sample_description,
			o.special_instructions,
			o.quoted_price,
			o.quoted_at,
			o.quote_notes,
			o.estimated_turnaround_days,
			o.quote_rejected_reason,
			o.quote_approved_at,
			o.quote_rejected_at,
			o.acknowledged_at,
			o.completed_at,
			o.created_at
		FROM orders o
		JOIN lab_services s ON s.id = o.service_id
		JOIN labs l ON l.id = o.lab_id
		WHERE o.id = ?
	`
	args := []any{query.OrderID().Bytes()}

	switch {
	case query.Actor().IsClient():
		sqlText += ` AND o.client_id = ?`
		args = append(args, query.Actor().UserID().Bytes())
	case query.Actor().IsLabAdmin():
		sqlText += ` AND l.owner_id = ?`
		args = append(args, query.Actor().UserID().Bytes())
	}

	row := h.db.WithContext(ctx).Raw(sqlText, args...).Row()

	var resp GetOrderQueryResponse
	var id uuid.UUID
	var status int
	var price decimal.NullDecimal
	var quotedAt, approvedAt, rejectedAt, acknowledgedAt, completedAt *time.Time

	err := row.Scan(
		&id,
		&status,
		&resp.ServiceName,
		&resp.LabName,
		&resp.SampleDescription,
		&resp.SpecialInstructions,
		&price,
		&quotedAt,
		&resp.QuoteNotes,
		&resp.EstimatedTurnaroundDays,
		&resp.QuoteRejectedReason,
		&approvedAt,
		&rejectedAt,
		&acknowledgedAt,
		&completedAt,
		&resp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundErrorWithCause("orderId", query.OrderID(), err)
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.ID = orderID
	resp.Status = order.Status(status)
	if price.Valid {
		resp.QuotedPrice = &price.Decimal
	}
	resp.QuotedAt = quotedAt
	resp.QuoteApprovedAt = approvedAt
	resp.QuoteRejectedAt = rejectedAt
	resp.AcknowledgedAt = acknowledgedAt
	resp.CompletedAt = completedAt

	return resp, nil
}
