// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The status column is indexed because every write goes through a
// compare-and-set on it and the listings filter by it.
type OrderDTO struct {
	ID                      uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID                uuid.UUID `gorm:"type:uuid;index"`
	LabID                   uuid.UUID `gorm:"type:uuid;index"`
	ServiceID               uuid.UUID `gorm:"type:uuid;index"`
	Status                  int       `gorm:"index"`
	SampleDescription       string
	SpecialInstructions     *string
	ClientDetails           ClientDetailsDTO `gorm:"type:jsonb;serializer:json"`
	QuotedPrice             *decimal.Decimal `gorm:"type:numeric(12,2)"`
	QuotedAt                *time.Time
	QuoteNotes              *string
	EstimatedTurnaroundDays *int
	QuoteRejectedReason     *string
	QuoteApprovedAt         *time.Time
	QuoteRejectedAt         *time.Time
	AcknowledgedAt          *time.Time
	CompletedAt             *time.Time
	CreatedAt               time.Time `gorm:"autoCreateTime"`
	UpdatedAt               time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ClientDetailsDTO is the contact snapshot stored as one jsonb document.
// The snapshot is immutable after submission, so a document column keeps the
// row layout stable when contact fields evolve.
type ClientDetailsDTO struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Organization string `json:"organization,omitempty"`
	Address      string `json:"address,omitempty"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var quotedPrice *decimal.Decimal
	if p := aggregate.QuotedPrice(); p != nil {
		raw := p.Decimal()
		quotedPrice = &raw
	}

	details := aggregate.ClientDetails()

	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		ClientID:            aggregate.ClientID().Bytes(),
		LabID:               aggregate.LabID().Bytes(),
		ServiceID:           aggregate.ServiceID().Bytes(),
		Status:              int(aggregate.Status()),
		SampleDescription:   aggregate.SampleDescription(),
		SpecialInstructions: aggregate.SpecialInstructions(),
		ClientDetails: ClientDetailsDTO{
			Name:         details.Name,
			Email:        details.Email,
			Phone:        details.Phone,
			Organization: details.Organization,
			Address:      details.Address,
		},
		QuotedPrice:             quotedPrice,
		QuotedAt:                aggregate.QuotedAt(),
		QuoteNotes:              aggregate.QuoteNotes(),
		EstimatedTurnaroundDays: aggregate.EstimatedTurnaroundDays(),
		QuoteRejectedReason:     aggregate.QuoteRejectedReason(),
		QuoteApprovedAt:         aggregate.QuoteApprovedAt(),
		QuoteRejectedAt:         aggregate.QuoteRejectedAt(),
		AcknowledgedAt:          aggregate.AcknowledgedAt(),
		CompletedAt:             aggregate.CompletedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}
	labID, err := kernel.UUIDFromBytes(dto.LabID[:])
	if err != nil {
		return nil, err
	}
	serviceID, err := kernel.UUIDFromBytes(dto.ServiceID[:])
	if err != nil {
		return nil, err
	}

	var quotedPrice *kernel.Money
	if dto.QuotedPrice != nil {
		money, priceErr := kernel.NewMoney(*dto.QuotedPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		quotedPrice = &money
	}

	return order.RestoreOrder(
		id,
		clientID,
		labID,
		serviceID,
		order.Status(dto.Status),
		dto.SampleDescription,
		dto.SpecialInstructions,
		order.ClientDetails{
			Name:         dto.ClientDetails.Name,
			Email:        dto.ClientDetails.Email,
			Phone:        dto.ClientDetails.Phone,
			Organization: dto.ClientDetails.Organization,
			Address:      dto.ClientDetails.Address,
		},
		quotedPrice,
		dto.QuotedAt,
		dto.QuoteNotes,
		dto.EstimatedTurnaroundDays,
		dto.QuoteRejectedReason,
		dto.QuoteApprovedAt,
		dto.QuoteRejectedAt,
		dto.AcknowledgedAt,
		dto.CompletedAt,
	)
}
