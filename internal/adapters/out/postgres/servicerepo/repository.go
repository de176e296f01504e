package servicerepo

import (
	"context"
	"errors"

	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/core/domain/model/labservice"
	"pipetgo/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLabServiceRepository implements LabServiceRepository using GORM.
type GormLabServiceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLabServiceRepository creates a new GORM catalog repository.
func NewGormLabServiceRepository(db *gorm.DB, tracker aggregateTracker) *GormLabServiceRepository {
	return &GormLabServiceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new catalog entry to the database.
func (r *GormLabServiceRepository) Add(ctx context.Context, svc *labservice.LabService) error {
	if err := svc.Validate(); err != nil {
		return err
	}

	dto := fromDomain(svc)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(svc.ID(), svc)
	return nil
}

// Update saves an existing catalog entry to the database.
func (r *GormLabServiceRepository) Update(ctx context.Context, svc *labservice.LabService) error {
	if err := svc.Validate(); err != nil {
		return err
	}

	dto := fromDomain(svc)
	result := r.db.WithContext(ctx).Model(&LabServiceDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(svc.ID(), svc)
	return nil
}

// Get retrieves a catalog entry by ID.
func (r *GormLabServiceRepository) Get(ctx context.Context, id kernel.UUID) (*labservice.LabService, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LabServiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("serviceId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForLabOwner retrieves the catalog entry only if its lab is owned by the
// given user. A wrong owner scans as no row.
func (r *GormLabServiceRepository) GetForLabOwner(ctx context.Context, id kernel.UUID, ownerID kernel.UUID) (*labservice.LabService, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dto LabServiceDTO
	err := r.db.WithContext(ctx).
		Joins("JOIN labs ON labs.id = lab_services.lab_id").
		First(&dto, "lab_services.id = ? AND labs.owner_id = ?", id.Bytes(), ownerID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("serviceId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
