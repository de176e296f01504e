// Package servicerepo provides data transfer objects and mapping functions
// for catalog persistence.
package servicerepo

import (
	"time"

	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/core/domain/model/labservice"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LabServiceDTO represents the database structure for catalog entries.
type LabServiceDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	LabID              uuid.UUID `gorm:"type:uuid;index"`
	Name               string
	Description        *string
	Category           string `gorm:"index"`
	PricingMode        int
	PricePerUnit       *decimal.Decimal `gorm:"type:numeric(12,2)"`
	UnitType           string
	TurnaroundDays     *int
	SampleRequirements *string
	Active             bool      `gorm:"index"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for catalog entries.
func (LabServiceDTO) TableName() string {
	return "lab_services"
}

func fromDomain(svc *labservice.LabService) LabServiceDTO {
	var price *decimal.Decimal
	if p := svc.PricePerUnit(); p != nil {
		raw := p.Decimal()
		price = &raw
	}

	return LabServiceDTO{
		ID:                 svc.ID().Bytes(),
		LabID:              svc.LabID().Bytes(),
		Name:               svc.Name(),
		Description:        svc.Description(),
		Category:           svc.Category(),
		PricingMode:        int(svc.PricingMode()),
		PricePerUnit:       price,
		UnitType:           svc.UnitType(),
		TurnaroundDays:     svc.TurnaroundDays(),
		SampleRequirements: svc.SampleRequirements(),
		Active:             svc.IsActive(),
	}
}

func toDomain(dto LabServiceDTO) (*labservice.LabService, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	labID, err := kernel.UUIDFromBytes(dto.LabID[:])
	if err != nil {
		return nil, err
	}

	var price *kernel.Money
	if dto.PricePerUnit != nil {
		money, priceErr := kernel.NewMoney(*dto.PricePerUnit)
		if priceErr != nil {
			return nil, priceErr
		}
		price = &money
	}

	return labservice.RestoreLabService(
		id,
		labID,
		dto.Name,
		dto.Description,
		dto.Category,
		labservice.PricingMode(dto.PricingMode),
		price,
		dto.UnitType,
		dto.TurnaroundDays,
		dto.SampleRequirements,
		dto.Active,
	)
}
