package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request and response bodies of the REST API. Prices travel as decimal
// strings so no precision is lost on the wire.

// ClientDetailsBody carries the contact block of an order request.
type ClientDetailsBody struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Organization string `json:"organization,omitempty"`
	Address      string `json:"address,omitempty"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	ServiceID           uuid.UUID         `json:"serviceId"`
	SampleDescription   string            `json:"sampleDescription"`
	SpecialInstructions *string           `json:"specialInstructions,omitempty"`
	ClientDetails       ClientDetailsBody `json:"clientDetails"`
	RequestCustomQuote  bool              `json:"requestCustomQuote"`
}

// ProvideQuoteRequest is the body of POST /api/v1/orders/:id/quote.
type ProvideQuoteRequest struct {
	Price                   decimal.Decimal `json:"price"`
	QuoteNotes              *string         `json:"quoteNotes,omitempty"`
	EstimatedTurnaroundDays *int            `json:"estimatedTurnaroundDays,omitempty"`
}

// DecideQuoteRequest is the body of POST /api/v1/orders/:id/approve-quote.
type DecideQuoteRequest struct {
	Approved        bool   `json:"approved"`
	RejectionReason string `json:"rejectionReason,omitempty"`
}

// RequestCustomQuoteRequest is the body of POST /api/v1/orders/:id/request-custom-quote.
type RequestCustomQuoteRequest struct {
	Reason string `json:"reason"`
}

// UpdateOrderStatusRequest is the body of PATCH /api/v1/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// CreateLabServiceRequest is the body of POST /api/v1/services.
type CreateLabServiceRequest struct {
	LabID              uuid.UUID        `json:"labId"`
	Name               string           `json:"name"`
	Description        *string          `json:"description,omitempty"`
	Category           string           `json:"category"`
	PricingMode        string           `json:"pricingMode"`
	PricePerUnit       *decimal.Decimal `json:"pricePerUnit,omitempty"`
	TurnaroundDays     *int             `json:"turnaroundDays,omitempty"`
	SampleRequirements *string          `json:"sampleRequirements,omitempty"`
}

// UpdateLabServiceRequest is the body of PATCH /api/v1/services/:id.
// Absent fields keep their current values.
type UpdateLabServiceRequest struct {
	Name               *string          `json:"name,omitempty"`
	Description        *string          `json:"description,omitempty"`
	PricingMode        *string          `json:"pricingMode,omitempty"`
	PricePerUnit       *decimal.Decimal `json:"pricePerUnit,omitempty"`
	TurnaroundDays     *int             `json:"turnaroundDays,omitempty"`
	SampleRequirements *string          `json:"sampleRequirements,omitempty"`
	Active             *bool            `json:"active,omitempty"`
}

// OrderResponse is the full representation of an order.
type OrderResponse struct {
	ID                      uuid.UUID         `json:"id"`
	ClientID                uuid.UUID         `json:"clientId"`
	LabID                   uuid.UUID         `json:"labId"`
	ServiceID               uuid.UUID         `json:"serviceId"`
	Status                  string            `json:"status"`
	SampleDescription       string            `json:"sampleDescription"`
	SpecialInstructions     *string           `json:"specialInstructions,omitempty"`
	ClientDetails           ClientDetailsBody `json:"clientDetails"`
	QuotedPrice             *decimal.Decimal  `json:"quotedPrice,omitempty"`
	QuotedAt                *time.Time        `json:"quotedAt,omitempty"`
	QuoteNotes              *string           `json:"quoteNotes,omitempty"`
	EstimatedTurnaroundDays *int              `json:"estimatedTurnaroundDays,omitempty"`
	QuoteRejectedReason     *string           `json:"quoteRejectedReason,omitempty"`
	QuoteApprovedAt         *time.Time        `json:"quoteApprovedAt,omitempty"`
	QuoteRejectedAt         *time.Time        `json:"quoteRejectedAt,omitempty"`
	AcknowledgedAt          *time.Time        `json:"acknowledgedAt,omitempty"`
	CompletedAt             *time.Time        `json:"completedAt,omitempty"`
}

// OrderSummaryResponse is the list item of GET /api/v1/orders.
type OrderSummaryResponse struct {
	ID          uuid.UUID        `json:"id"`
	Status      string           `json:"status"`
	ServiceName string           `json:"serviceName"`
	LabName     string           `json:"labName"`
	QuotedPrice *decimal.Decimal `json:"quotedPrice,omitempty"`
	QuotedAt    *time.Time       `json:"quotedAt,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// OrderDetailResponse is the body of GET /api/v1/orders/:id.
type OrderDetailResponse struct {
	ID                      uuid.UUID        `json:"id"`
	Status                  string           `json:"status"`
	ServiceName             string           `json:"serviceName"`
	LabName                 string           `json:"labName"`
	SampleDescription       string           `json:"sampleDescription"`
	SpecialInstructions     *string          `json:"specialInstructions,omitempty"`
	QuotedPrice             *decimal.Decimal `json:"quotedPrice,omitempty"`
	QuotedAt                *time.Time       `json:"quotedAt,omitempty"`
	QuoteNotes              *string          `json:"quoteNotes,omitempty"`
	EstimatedTurnaroundDays *int             `json:"estimatedTurnaroundDays,omitempty"`
	QuoteRejectedReason     *string          `json:"quoteRejectedReason,omitempty"`
	QuoteApprovedAt         *time.Time       `json:"quoteApprovedAt,omitempty"`
	QuoteRejectedAt         *time.Time       `json:"quoteRejectedAt,omitempty"`
	AcknowledgedAt          *time.Time       `json:"acknowledgedAt,omitempty"`
	CompletedAt             *time.Time       `json:"completedAt,omitempty"`
	CreatedAt               time.Time        `json:"createdAt"`
}

// OrderStatsResponse is the body of GET /api/v1/orders/stats.
type OrderStatsResponse struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"byStatus"`
}

// LabServiceResponse is the representation of a catalog entry.
type LabServiceResponse struct {
	ID                 uuid.UUID        `json:"id"`
	LabID              uuid.UUID        `json:"labId"`
	Name               string           `json:"name"`
	Description        *string          `json:"description,omitempty"`
	Category           string           `json:"category"`
	PricingMode        string           `json:"pricingMode"`
	PricePerUnit       *decimal.Decimal `json:"pricePerUnit,omitempty"`
	UnitType           string           `json:"unitType"`
	TurnaroundDays     *int             `json:"turnaroundDays,omitempty"`
	SampleRequirements *string          `json:"sampleRequirements,omitempty"`
	Active             bool             `json:"active"`
}

// LabServiceListItemResponse is the list item of GET /api/v1/services.
type LabServiceListItemResponse struct {
	ID             uuid.UUID        `json:"id"`
	LabName        string           `json:"labName"`
	Name           string           `json:"name"`
	Description    *string          `json:"description,omitempty"`
	Category       string           `json:"category"`
	PricingMode    string           `json:"pricingMode"`
	PricePerUnit   *decimal.Decimal `json:"pricePerUnit,omitempty"`
	UnitType       string           `json:"unitType"`
	TurnaroundDays *int             `json:"turnaroundDays,omitempty"`
}

// Error is the uniform error body of all failed requests.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
