// Package labrepo provides data transfer objects and mapping functions for
// lab persistence.
package labrepo

import (
	"time"

	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/core/domain/model/lab"

	"github.com/google/uuid"
)

// LabDTO represents the database structure for labs. The owner_id column
// carries the ownership checks of every lab-side operation.
type LabDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Description *string
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for labs.
func (LabDTO) TableName() string {
	return "labs"
}

func fromDomain(aggregate *lab.Lab) LabDTO {
	return LabDTO{
		ID:          aggregate.ID().Bytes(),
		OwnerID:     aggregate.OwnerID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
	}
}

func toDomain(dto LabDTO) (*lab.Lab, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	aggregate, err := lab.NewLab(id, ownerID, dto.Name)
	if err != nil {
		return nil, err
	}
	if dto.Description != nil {
		aggregate.SetDescription(*dto.Description)
	}
	return aggregate, nil
}
