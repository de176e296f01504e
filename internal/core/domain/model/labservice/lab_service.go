package labservice

import (
	"errors"
	"fmt"
	"strings"

	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/pkg/errs"
)

var (
	// ErrLabServiceIsNotConstructed is returned when a LabService instance was
	// not created through NewLabService or RestoreLabService.
	ErrLabServiceIsNotConstructed = errors.New("LabService must be created via NewLabService constructor")

	// ErrCatalogPriceRequired is returned when a FIXED or HYBRID service is
	// created or repriced without a pricePerUnit.
	ErrCatalogPriceRequired = errs.NewValueIsRequiredError("pricePerUnit is required for FIXED and HYBRID pricing modes")

	// ErrCatalogPriceNotAllowed is returned when a QUOTE_REQUIRED service
	// carries a pricePerUnit.
	ErrCatalogPriceNotAllowed = errs.NewValueIsInvalidError("pricePerUnit must be empty for QUOTE_REQUIRED pricing mode")
)

const (
	minNameLength        = 3
	maxNameLength        = 200
	maxDescriptionLength = 1000
	maxRequirements      = 500
	maxTurnaroundDays    = 365
	defaultUnitType      = "per_sample"
)

// LabService is a purchasable test offering published by a lab.
//
// Invariants:
//   - FIXED and HYBRID services carry a catalog pricePerUnit
//   - QUOTE_REQUIRED services never carry one
//   - inactive services cannot originate new orders
//
// Orders reference a service but never share its mutable state: the price in
// force at order time is copied into the order, so repricing a service never
// rewrites history.
type LabService struct {
	id                 kernel.UUID
	labID              kernel.UUID
	name               string
	description        *string
	category           string
	pricingMode        PricingMode
	pricePerUnit       *kernel.Money
	unitType           string
	turnaroundDays     *int
	sampleRequirements *string
	active             bool

	isConstructed bool
}

// NewLabService creates an active LabService after validating the name, the
// pricing mode, and the mode/price invariant. Optional attributes are set
// afterwards through the setter methods.
func NewLabService(
	id kernel.UUID,
	labID kernel.UUID,
	name string,
	category string,
	pricingMode PricingMode,
	pricePerUnit *kernel.Money,
) (*LabService, error) {
	service := &LabService{
		unitType:      defaultUnitType,
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		service.setID(id),
		service.setLabID(labID),
		service.setName(name),
		service.setCategory(category),
		service.setPricing(pricingMode, pricePerUnit),
	); err != nil {
		return nil, err
	}

	return service, nil
}

// RestoreLabService reconstructs a LabService from persistence without
// re-running creation defaults.
func RestoreLabService(
	id kernel.UUID,
	labID kernel.UUID,
	name string,
	description *string,
	category string,
	pricingMode PricingMode,
	pricePerUnit *kernel.Money,
	unitType string,
	turnaroundDays *int,
	sampleRequirements *string,
	active bool,
) (*LabService, error) {
	service, err := NewLabService(id, labID, name, category, pricingMode, pricePerUnit)
	if err != nil {
		return nil, err
	}

	if description != nil {
		if err = service.SetDescription(*description); err != nil {
			return nil, err
		}
	}
	if turnaroundDays != nil {
		if err = service.SetTurnaroundDays(*turnaroundDays); err != nil {
			return nil, err
		}
	}
	if sampleRequirements != nil {
		if err = service.SetSampleRequirements(*sampleRequirements); err != nil {
			return nil, err
		}
	}
	if unitType != "" {
		service.unitType = unitType
	}
	service.active = active

	return service, nil
}

// Validate ensures the LabService was created through a constructor.
func (s *LabService) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrLabServiceIsNotConstructed
	}
	return nil
}

// ID returns the service's unique identifier.
func (s *LabService) ID() kernel.UUID {
	return s.id
}

// LabID returns the owning lab's identifier.
func (s *LabService) LabID() kernel.UUID {
	return s.labID
}

// Name returns the service name.
func (s *LabService) Name() string {
	return s.name
}

// Description returns the optional service description.
func (s *LabService) Description() *string {
	return s.description
}

// Category returns the service category.
func (s *LabService) Category() string {
	return s.category
}

// PricingMode returns how orders against this service are priced.
func (s *LabService) PricingMode() PricingMode {
	return s.pricingMode
}

// PricePerUnit returns the catalog price, nil for QUOTE_REQUIRED services.
func (s *LabService) PricePerUnit() *kernel.Money {
	return s.pricePerUnit
}

// UnitType returns what one unit of the service covers, e.g. "per_sample".
func (s *LabService) UnitType() string {
	return s.unitType
}

// TurnaroundDays returns the advertised turnaround, if any.
func (s *LabService) TurnaroundDays() *int {
	return s.turnaroundDays
}

// SampleRequirements returns the optional sample handling requirements.
func (s *LabService) SampleRequirements() *string {
	return s.sampleRequirements
}

// IsActive reports whether the service accepts new orders.
func (s *LabService) IsActive() bool {
	return s.active
}

// Rename changes the service name, keeping the length rules.
func (s *LabService) Rename(name string) error {
	return s.setName(name)
}

// Reprice changes the pricing mode and catalog price together, enforcing the
// mode/price invariant. Existing orders keep the price copied at their
// creation time.
func (s *LabService) Reprice(mode PricingMode, pricePerUnit *kernel.Money) error {
	return s.setPricing(mode, pricePerUnit)
}

// SetDescription sets the optional description.
func (s *LabService) SetDescription(description string) error {
	if len(description) > maxDescriptionLength {
		return errs.NewValueIsOutOfRangeError("description", len(description), 0, maxDescriptionLength)
	}
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		s.description = nil
		return nil
	}
	s.description = &trimmed
	return nil
}

// SetTurnaroundDays sets the advertised turnaround in whole days.
func (s *LabService) SetTurnaroundDays(days int) error {
	if days < 1 || days > maxTurnaroundDays {
		return errs.NewValueIsOutOfRangeError("turnaroundDays", days, 1, maxTurnaroundDays)
	}
	s.turnaroundDays = &days
	return nil
}

// SetSampleRequirements sets the optional sample handling requirements.
func (s *LabService) SetSampleRequirements(requirements string) error {
	if len(requirements) > maxRequirements {
		return errs.NewValueIsOutOfRangeError("sampleRequirements", len(requirements), 0, maxRequirements)
	}
	trimmed := strings.TrimSpace(requirements)
	if trimmed == "" {
		s.sampleRequirements = nil
		return nil
	}
	s.sampleRequirements = &trimmed
	return nil
}

// Activate makes the service available for new orders.
func (s *LabService) Activate() {
	s.active = true
}

// Deactivate withdraws the service from the catalog. Existing orders are
// unaffected.
func (s *LabService) Deactivate() {
	s.active = false
}

func (s *LabService) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *LabService) setLabID(labID kernel.UUID) error {
	if err := labID.Validate(); err != nil {
		return err
	}
	s.labID = labID
	return nil
}

func (s *LabService) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < minNameLength || len(trimmed) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("name", len(trimmed), minNameLength, maxNameLength)
	}
	s.name = trimmed
	return nil
}

func (s *LabService) setCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return errs.NewValueIsRequiredError("category")
	}
	s.category = strings.TrimSpace(category)
	return nil
}

func (s *LabService) setPricing(mode PricingMode, pricePerUnit *kernel.Money) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	if mode.RequiresCatalogPrice() {
		if pricePerUnit == nil {
			return fmt.Errorf("%w (mode: %s)", ErrCatalogPriceRequired, mode)
		}
		if err := pricePerUnit.Validate(); err != nil {
			return err
		}
	} else if pricePerUnit != nil {
		return ErrCatalogPriceNotAllowed
	}

	s.pricingMode = mode
	s.pricePerUnit = pricePerUnit
	return nil
}
