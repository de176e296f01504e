package order

import (
	"errors"
	"strings"
	"time"

	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/core/domain/model/labservice"
	"pipetgo/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrQuoteFieldsInconsistent is returned when quotedPrice and quotedAt do
	// not agree: they are always set and cleared together.
	ErrQuoteFieldsInconsistent = errors.New("quotedPrice and quotedAt must be set together")
)

const (
	minSampleDescription = 10
	maxSampleDescription = 2000
	maxInstructions      = 1000
	minReasonLength      = 10
	maxReasonLength      = 500
	maxQuoteNotesLength  = 500
	maxTurnaround        = 365

	customQuotePrefix = "Custom Quote Requested: "
)

// Order is the aggregate root of the marketplace: a client's request for one
// lab test, carrying its own pricing and status lifecycle.
//
// Invariants:
//   - status only changes through the transition methods below; there is no
//     status setter
//   - quotedPrice is nil exactly while a quote is outstanding, and quotedAt
//     mirrors it
//   - each lifecycle timestamp is written once, when its transition fires;
//     only the request-custom-quote path clears quote fields, to re-enter
//     the quoting flow
//   - terminal orders (COMPLETED, CANCELLED) never change again
//
// The aggregate checks state and payload; who may call which method is the
// caller's concern, decided against ownership before the aggregate is ever
// loaded.
type Order struct {
	id        kernel.UUID
	clientID  kernel.UUID
	labID     kernel.UUID
	serviceID kernel.UUID

	status Status

	sampleDescription   string
	specialInstructions *string
	clientDetails       ClientDetails

	quotedPrice             *kernel.Money
	quotedAt                *time.Time
	quoteNotes              *string
	estimatedTurnaroundDays *int
	quoteRejectedReason     *string

	quoteApprovedAt *time.Time
	quoteRejectedAt *time.Time
	acknowledgedAt  *time.Time
	completedAt     *time.Time

	isConstructed bool
}

// NewOrder creates an Order in its initial state. The initial status, quoted
// price and quote timestamp come from the pricing policy evaluated against
// the ordered service; only QUOTE_REQUESTED and PENDING are legal starting
// points.
func NewOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	labID kernel.UUID,
	serviceID kernel.UUID,
	sampleDescription string,
	specialInstructions *string,
	clientDetails ClientDetails,
	initialStatus Status,
	quotedPrice *kernel.Money,
	quotedAt *time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setLabID(labID),
		o.setServiceID(serviceID),
		o.setSampleDescription(sampleDescription),
		o.setSpecialInstructions(specialInstructions),
		o.setClientDetails(clientDetails),
		o.setInitialState(initialStatus, quotedPrice, quotedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it
// accepts any valid status and the full set of lifecycle fields.
func RestoreOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	labID kernel.UUID,
	serviceID kernel.UUID,
	status Status,
	sampleDescription string,
	specialInstructions *string,
	clientDetails ClientDetails,
	quotedPrice *kernel.Money,
	quotedAt *time.Time,
	quoteNotes *string,
	estimatedTurnaroundDays *int,
	quoteRejectedReason *string,
	quoteApprovedAt *time.Time,
	quoteRejectedAt *time.Time,
	acknowledgedAt *time.Time,
	completedAt *time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setLabID(labID),
		o.setServiceID(serviceID),
		status.Validate(),
		o.setSampleDescription(sampleDescription),
		o.setSpecialInstructions(specialInstructions),
		o.setClientDetails(clientDetails),
		validateQuoteFields(quotedPrice, quotedAt),
	); err != nil {
		return nil, err
	}

	o.status = status
	o.quotedPrice = quotedPrice
	o.quotedAt = quotedAt
	o.quoteNotes = quoteNotes
	o.estimatedTurnaroundDays = estimatedTurnaroundDays
	o.quoteRejectedReason = quoteRejectedReason
	o.quoteApprovedAt = quoteApprovedAt
	o.quoteRejectedAt = quoteRejectedAt
	o.acknowledgedAt = acknowledgedAt
	o.completedAt = completedAt

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the id of the client owning this order.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// LabID returns the id of the lab the order was placed with.
func (o *Order) LabID() kernel.UUID {
	return o.labID
}

// ServiceID returns the id of the ordered service.
func (o *Order) ServiceID() kernel.UUID {
	return o.serviceID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// SampleDescription returns the client's description of the sample.
func (o *Order) SampleDescription() string {
	return o.sampleDescription
}

// SpecialInstructions returns the accumulated special instructions, if any.
func (o *Order) SpecialInstructions() *string {
	return o.specialInstructions
}

// ClientDetails returns the contact snapshot captured at submission.
func (o *Order) ClientDetails() ClientDetails {
	return o.clientDetails
}

// QuotedPrice returns the agreed price, nil while a quote is outstanding.
func (o *Order) QuotedPrice() *kernel.Money {
	return o.quotedPrice
}

// QuotedAt returns when the current price was established.
func (o *Order) QuotedAt() *time.Time {
	return o.quotedAt
}

// QuoteNotes returns the lab's notes attached to the quote, if any.
func (o *Order) QuoteNotes() *string {
	return o.quoteNotes
}

// EstimatedTurnaroundDays returns the lab's quoted turnaround, if any.
func (o *Order) EstimatedTurnaroundDays() *int {
	return o.estimatedTurnaroundDays
}

// QuoteRejectedReason returns why the client rejected the quote, nil unless
// the order is (or was) QUOTE_REJECTED without a later approval.
func (o *Order) QuoteRejectedReason() *string {
	return o.quoteRejectedReason
}

// QuoteApprovedAt returns when the client approved the quote, if ever.
func (o *Order) QuoteApprovedAt() *time.Time {
	return o.quoteApprovedAt
}

// QuoteRejectedAt returns when the client rejected the quote, if ever.
func (o *Order) QuoteRejectedAt() *time.Time {
	return o.quoteRejectedAt
}

// AcknowledgedAt returns when the lab acknowledged the order, if ever.
func (o *Order) AcknowledgedAt() *time.Time {
	return o.acknowledgedAt
}

// CompletedAt returns when the order completed, if ever.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ProvideQuote records the lab's quote and transitions
// QUOTE_REQUESTED -> QUOTE_PROVIDED.
//
// The state is checked before the payload: quoting an order that already left
// QUOTE_REQUESTED reports a conflict without touching the existing quote.
// Payload rules: price positive and at most kernel.MaxPrice, notes at most
// 500 characters, turnaround between 1 and 365 whole days.
func (o *Order) ProvideQuote(price decimal.Decimal, notes *string, turnaroundDays *int, now time.Time) error {
	newStatus, err := o.status.ProvideQuote()
	if err != nil {
		return err
	}

	money, err := kernel.NewMoney(price)
	if err != nil {
		return err
	}

	var trimmedNotes *string
	if notes != nil {
		if len(*notes) > maxQuoteNotesLength {
			return errs.NewValueIsOutOfRangeError("quoteNotes", len(*notes), 0, maxQuoteNotesLength)
		}
		t := strings.TrimSpace(*notes)
		if t != "" {
			trimmedNotes = &t
		}
	}

	if turnaroundDays != nil && (*turnaroundDays < 1 || *turnaroundDays > maxTurnaround) {
		return errs.NewValueIsOutOfRangeError("estimatedTurnaroundDays", *turnaroundDays, 1, maxTurnaround)
	}

	o.status = newStatus
	o.quotedPrice = &money
	o.quotedAt = &now
	o.quoteNotes = trimmedNotes
	o.estimatedTurnaroundDays = turnaroundDays
	return nil
}

// ApproveQuote records the client's acceptance and transitions
// QUOTE_PROVIDED -> PENDING. A previous rejection reason, if any, is cleared.
func (o *Order) ApproveQuote(now time.Time) error {
	newStatus, err := o.status.ApproveQuote()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.quoteApprovedAt = &now
	o.quoteRejectedReason = nil
	return nil
}

// RejectQuote records the client's refusal and transitions
// QUOTE_PROVIDED -> QUOTE_REJECTED. The reason is mandatory: between 10 and
// 500 characters after trimming.
func (o *Order) RejectQuote(reason string, now time.Time) error {
	newStatus, err := o.status.RejectQuote()
	if err != nil {
		return err
	}

	trimmed, err := validateReason("rejectionReason", reason)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.quoteRejectedReason = &trimmed
	o.quoteRejectedAt = &now
	return nil
}

// RequestCustomQuote re-enters the quoting flow for a PENDING order on a
// HYBRID service, transitioning PENDING -> QUOTE_REQUESTED.
//
// Guard order matters and is observable: the pricing mode is checked before
// the status, so a FIXED service's order reports a forbidden pricing mode
// even when the status would also have refused the move. On success the
// reason is appended to the special instructions and the quote fields reset
// to null, making the order await a fresh quote.
func (o *Order) RequestCustomQuote(mode labservice.PricingMode, reason string) error {
	if mode != labservice.PricingModeHybrid {
		return errs.NewForbiddenError("request custom quote",
			"custom quote requests are only available for HYBRID pricing mode services (current: "+mode.String()+")")
	}

	newStatus, err := o.status.RequestCustomQuote()
	if err != nil {
		return err
	}

	trimmed, err := validateReason("reason", reason)
	if err != nil {
		return err
	}

	note := customQuotePrefix + trimmed
	if o.specialInstructions != nil {
		combined := *o.specialInstructions + "\n\n" + note
		o.specialInstructions = &combined
	} else {
		o.specialInstructions = &note
	}

	o.status = newStatus
	o.quotedPrice = nil
	o.quotedAt = nil
	return nil
}

// Acknowledge records the lab's confirmation and transitions
// PENDING -> ACKNOWLEDGED.
func (o *Order) Acknowledge(now time.Time) error {
	newStatus, err := o.status.TransitionTo(Acknowledged)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.acknowledgedAt = &now
	return nil
}

// Start transitions ACKNOWLEDGED -> IN_PROGRESS.
func (o *Order) Start() error {
	newStatus, err := o.status.TransitionTo(InProgress)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete transitions IN_PROGRESS -> COMPLETED, a terminal state.
func (o *Order) Complete(now time.Time) error {
	newStatus, err := o.status.TransitionTo(Completed)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.completedAt = &now
	return nil
}

// Cancel transitions any non-terminal status to CANCELLED, a terminal state.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setLabID(labID kernel.UUID) error {
	if err := labID.Validate(); err != nil {
		return err
	}
	o.labID = labID
	return nil
}

func (o *Order) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return err
	}
	o.serviceID = serviceID
	return nil
}

func (o *Order) setSampleDescription(description string) error {
	trimmed := strings.TrimSpace(description)
	if len(trimmed) < minSampleDescription || len(trimmed) > maxSampleDescription {
		return errs.NewValueIsOutOfRangeError("sampleDescription", len(trimmed), minSampleDescription, maxSampleDescription)
	}
	o.sampleDescription = trimmed
	return nil
}

func (o *Order) setSpecialInstructions(instructions *string) error {
	if instructions == nil {
		return nil
	}
	if len(*instructions) > maxInstructions {
		return errs.NewValueIsOutOfRangeError("specialInstructions", len(*instructions), 0, maxInstructions)
	}
	trimmed := strings.TrimSpace(*instructions)
	if trimmed == "" {
		return nil
	}
	o.specialInstructions = &trimmed
	return nil
}

func (o *Order) setClientDetails(details ClientDetails) error {
	if err := details.Validate(); err != nil {
		return err
	}
	o.clientDetails = details
	return nil
}

func (o *Order) setInitialState(status Status, quotedPrice *kernel.Money, quotedAt *time.Time) error {
	if status != QuoteRequested && status != Pending {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errors.New(status.String()+" is not a valid initial status"))
	}
	if err := validateQuoteFields(quotedPrice, quotedAt); err != nil {
		return err
	}

	o.status = status
	o.quotedPrice = quotedPrice
	o.quotedAt = quotedAt
	return nil
}

func validateQuoteFields(quotedPrice *kernel.Money, quotedAt *time.Time) error {
	if (quotedPrice == nil) != (quotedAt == nil) {
		return ErrQuoteFieldsInconsistent
	}
	if quotedPrice != nil {
		return quotedPrice.Validate()
	}
	return nil
}

func validateReason(paramName, reason string) (string, error) {
	trimmed := strings.TrimSpace(reason)
	if trimmed == "" {
		return "", errs.NewValueIsRequiredError(paramName)
	}
	if len(trimmed) < minReasonLength || len(trimmed) > maxReasonLength {
		return "", errs.NewValueIsOutOfRangeError(paramName, len(trimmed), minReasonLength, maxReasonLength)
	}
	return trimmed, nil
}
