package labrepo

import (
	"context"
	"errors"

	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/core/domain/model/lab"
	"pipetgo/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLabRepository implements LabRepository using GORM.
type GormLabRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLabRepository creates a new GORM lab repository.
func NewGormLabRepository(db *gorm.DB, tracker aggregateTracker) *GormLabRepository {
	return &GormLabRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new lab to the database.
func (r *GormLabRepository) Add(ctx context.Context, aggregate *lab.Lab) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a lab by ID.
func (r *GormLabRepository) Get(ctx context.Context, id kernel.UUID) (*lab.Lab, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LabDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("labId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
