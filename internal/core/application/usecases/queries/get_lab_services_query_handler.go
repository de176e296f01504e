package queries

import (
	"context"

	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/core/domain/model/labservice"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetLabServicesQueryHandler lists the public catalog from the database.
// Only active services are visible; deactivated entries disappear from the
// listing while their existing orders live on.
type GetLabServicesQueryHandler struct {
	db *gorm.DB
}

// NewGetLabServicesQueryHandler creates a handler for catalog listings.
func NewGetLabServicesQueryHandler(db *gorm.DB) GetLabServicesQueryHandler {
	return GetLabServicesQueryHandler{db: db}
}

// Handle executes the catalog listing.
func (h GetLabServicesQueryHandler) Handle(
	ctx context.Context,
	query GetLabServicesQuery,
) ([]GetLabServicesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			s.id,
			l.name,
			s.name,
			s.description,
			s.category,
			s.pricing_mode,
			s.price_per_unit,
			s.unit_type,
			s.turnaround_days
		FROM lab_services s
		JOIN labs l ON l.id = s.lab_id
		WHERE s.active
	`
	var args []any

	if query.Category() != "" {
		sql += ` AND s.category = ?`
		args = append(args, query.Category())
	}

	sql += ` ORDER BY s.name LIMIT ? OFFSET ?`
	args = append(args, query.PageSize(), query.Offset())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := make([]GetLabServicesQueryResponse, 0)
	for rows.Next() {
		var resp GetLabServicesQueryResponse
		var id uuid.UUID
		var mode int
		var price decimal.NullDecimal

		err = rows.Scan(
			&id,
			&resp.LabName,
			&resp.Name,
			&resp.Description,
			&resp.Category,
			&mode,
			&price,
			&resp.UnitType,
			&resp.TurnaroundDays,
		)
		if err != nil {
			return nil, err
		}

		serviceID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = serviceID
		resp.PricingMode = labservice.PricingMode(mode)
		if price.Valid {
			resp.PricePerUnit = &price.Decimal
		}
		services = append(services, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return services, nil
}
