package order

import (
	"strings"

	"pipetgo/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. The legal transitions
// form a fixed state machine:
//
//	QUOTE_REQUESTED ──> QUOTE_PROVIDED ──┬──> PENDING ──> ACKNOWLEDGED ──> IN_PROGRESS ──> COMPLETED
//	       ▲                             │       │
//	       │                             └──> QUOTE_REJECTED
//	       └───────(request custom quote)────────┘
//
// plus CANCELLED, reachable from every non-terminal state. COMPLETED and
// CANCELLED are terminal. The transition table is the single source of truth;
// the per-operation methods below are thin wrappers that name the business
// transitions and report Conflict errors when the precondition does not hold.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// QuoteRequested means the order awaits a custom quote from the lab.
	QuoteRequested

	// QuoteProvided means the lab has quoted and the client must decide.
	QuoteProvided

	// QuoteRejected means the client declined the lab's quote.
	QuoteRejected

	// Pending means a price is agreed and the lab has not yet acknowledged
	// the order.
	Pending

	// Acknowledged means the lab has confirmed it will run the test.
	Acknowledged

	// InProgress means the lab is running the test.
	InProgress

	// Completed means results are delivered. Terminal.
	Completed

	// Cancelled means the order was withdrawn. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		QuoteRequested: "QUOTE_REQUESTED",
		QuoteProvided:  "QUOTE_PROVIDED",
		QuoteRejected:  "QUOTE_REJECTED",
		Pending:        "PENDING",
		Acknowledged:   "ACKNOWLEDGED",
		InProgress:     "IN_PROGRESS",
		Completed:      "COMPLETED",
		Cancelled:      "CANCELLED",
	}
}

// getValidTransitions returns the legal transition table: current status to
// the set of statuses it may move to. Statuses mapping to an empty set are
// terminal.
func getValidTransitions() map[Status][]Status {
	return map[Status][]Status{
		QuoteRequested: {QuoteProvided, Cancelled},
		QuoteProvided:  {Pending, QuoteRejected, Cancelled},
		QuoteRejected:  {Cancelled},
		Pending:        {Acknowledged, Cancelled, QuoteRequested},
		Acknowledged:   {InProgress, Cancelled},
		InProgress:     {Completed, Cancelled},
		Completed:      {},
		Cancelled:      {},
	}
}

// StatusFromString parses a wire-format status name into a Status.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status")
}

// String returns the wire-format name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks the Status is one of the defined values.
func (s Status) Validate() error {
	if _, ok := getValidTransitions()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// IsTerminal reports whether the status has no outbound transitions.
// Orders never leave COMPLETED or CANCELLED.
func (s Status) IsTerminal() bool {
	return len(getValidTransitions()[s]) == 0 && s.Validate() == nil
}

// CanTransitionTo reports whether the table allows moving to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getValidTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo moves to next if the table allows it. On an illegal move it
// returns a Conflict error naming the statuses next is reachable from and the
// actual current status.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewConflictError("status", strings.Join(sourcesOf(next), " or "), s.String())
	}
	return next, nil
}

// ProvideQuote transitions QUOTE_REQUESTED -> QUOTE_PROVIDED. Re-quoting an
// order that already left QUOTE_REQUESTED is a conflict, never an overwrite.
func (s Status) ProvideQuote() (Status, error) {
	if s != QuoteRequested {
		return Unknown, errs.NewConflictError("status", QuoteRequested.String(), s.String())
	}
	return QuoteProvided, nil
}

// ApproveQuote transitions QUOTE_PROVIDED -> PENDING.
func (s Status) ApproveQuote() (Status, error) {
	if s != QuoteProvided {
		return Unknown, errs.NewConflictError("status", QuoteProvided.String(), s.String())
	}
	return Pending, nil
}

// RejectQuote transitions QUOTE_PROVIDED -> QUOTE_REJECTED.
func (s Status) RejectQuote() (Status, error) {
	if s != QuoteProvided {
		return Unknown, errs.NewConflictError("status", QuoteProvided.String(), s.String())
	}
	return QuoteRejected, nil
}

// RequestCustomQuote transitions PENDING -> QUOTE_REQUESTED, re-entering the
// quoting flow. Only reachable for HYBRID services; the pricing-mode guard
// lives on the aggregate.
func (s Status) RequestCustomQuote() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewConflictError("status", Pending.String(), s.String())
	}
	return QuoteRequested, nil
}

// Cancel transitions any non-terminal status to CANCELLED.
func (s Status) Cancel() (Status, error) {
	return s.TransitionTo(Cancelled)
}

// sourcesOf returns the wire names of the statuses from which next is
// reachable, for conflict messages.
func sourcesOf(next Status) []string {
	sources := make([]string, 0, 2)
	for _, from := range []Status{QuoteRequested, QuoteProvided, QuoteRejected, Pending, Acknowledged, InProgress} {
		if from.CanTransitionTo(next) {
			sources = append(sources, from.String())
		}
	}
	return sources
}
