package services

import (
	"time"

	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/core/domain/model/labservice"
	"pipetgo/internal/core/domain/model/order"
)

// PricingPolicy is a domain service deciding how a new order enters the
// quotation lifecycle, based on the ordered service's pricing mode.
//
// Business rules:
//   - FIXED services book instantly: the order starts PENDING at the catalog
//     price, and a custom quote request on creation is ignored
//   - QUOTE_REQUIRED services always start QUOTE_REQUESTED with no price
//   - HYBRID services branch on the client's choice: instant booking at the
//     catalog price, or QUOTE_REQUESTED when a custom quote is asked for
//   - a service with an unrecognized pricing mode falls back to
//     QUOTE_REQUESTED, the safe path that forces a human to price it
//
// Example usage:
//
//	policy := services.NewPricingPolicy()
//	status, price, quotedAt, err := policy.Evaluate(svc, requestCustomQuote, time.Now())
//	if err != nil {
//	    // Service instance was not constructed properly
//	    return
//	}
//	order, err := order.NewOrder(..., status, price, quotedAt)
type PricingPolicy struct{}

// NewPricingPolicy creates a new PricingPolicy instance.
func NewPricingPolicy() PricingPolicy {
	return PricingPolicy{}
}

// Evaluate returns the initial status and quote fields for an order of the
// given service. The returned price and timestamp are either both set
// (instant booking) or both nil (quote flow), matching the order aggregate's
// invariant.
func (p PricingPolicy) Evaluate(
	svc *labservice.LabService,
	requestCustomQuote bool,
	now time.Time,
) (order.Status, *kernel.Money, *time.Time, error) {
	if err := svc.Validate(); err != nil {
		return order.Unknown, nil, nil, err
	}

	switch svc.PricingMode() {
	case labservice.PricingModeFixed:
		return p.instantBooking(svc, now)
	case labservice.PricingModeHybrid:
		if requestCustomQuote {
			return order.QuoteRequested, nil, nil, nil
		}
		return p.instantBooking(svc, now)
	case labservice.PricingModeQuoteRequired:
		return order.QuoteRequested, nil, nil, nil
	default:
		return order.QuoteRequested, nil, nil, nil
	}
}

func (p PricingPolicy) instantBooking(svc *labservice.LabService, now time.Time) (order.Status, *kernel.Money, *time.Time, error) {
	price := svc.PricePerUnit()
	if price == nil {
		// Catalog integrity guarantees a price for these modes; a missing
		// one means the service cannot be booked instantly.
		return 0, nil, nil, labservice.ErrCatalogPriceRequired
	}
	return order.Pending, price, &now, nil
}
