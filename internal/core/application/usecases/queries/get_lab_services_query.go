package queries

import (
	"errors"
	"strings"

	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/core/domain/model/labservice"
	"pipetgo/internal/pkg/errs"
	"pipetgo/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetLabServicesQueryIsNotConstructed = errors.New(
	"GetLabServicesQuery must be created via NewGetLabServicesQuery constructor",
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// GetLabServicesQuery retrieves the public service catalog: active services,
// optionally narrowed to one category, paginated.
//
// Example:
//
//	query, _ := NewGetLabServicesQuery("Mechanical Testing", 1, 20)
//	handler := NewGetLabServicesQueryHandler(db)
//
//	services, err := handler.Handle(ctx, query)
type GetLabServicesQuery struct {
	category string
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewGetLabServicesQuery creates a catalog query. An empty category means
// all categories; page is 1-based; pageSize 0 means the default of 20.
func NewGetLabServicesQuery(category string, page, pageSize int) (GetLabServicesQuery, error) {
	if page < 1 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return GetLabServicesQuery{}, errs.NewValueIsOutOfRangeError("pageSize", pageSize, 1, maxPageSize)
	}

	return GetLabServicesQuery{
		category: strings.TrimSpace(category),
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLabServicesQuery) Validate() error {
	return q.guard.Validate(ErrGetLabServicesQueryIsNotConstructed)
}

// Category returns the category filter, empty for all.
func (q GetLabServicesQuery) Category() string {
	return q.category
}

// Page returns the 1-based page number.
func (q GetLabServicesQuery) Page() int {
	return q.page
}

// PageSize returns the page size.
func (q GetLabServicesQuery) PageSize() int {
	return q.pageSize
}

// Offset returns the row offset of the requested page.
func (q GetLabServicesQuery) Offset() int {
	return (q.page - 1) * q.pageSize
}

// GetLabServicesQueryResponse is one catalog entry with its lab's name.
type GetLabServicesQueryResponse struct {
	ID             kernel.UUID
	LabName        string
	Name           string
	Description    *string
	Category       string
	PricingMode    labservice.PricingMode
	PricePerUnit   *decimal.Decimal
	UnitType       string
	TurnaroundDays *int
}
