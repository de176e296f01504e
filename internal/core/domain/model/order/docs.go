// Package order contains the Order aggregate and its Status state machine,
// the core of the marketplace.
//
// The lifecycle has eight states. Three creation paths exist, selected by the
// ordered service's pricing mode: fixed-price orders start PENDING with the
// catalog price, quote-required orders start QUOTE_REQUESTED with no price,
// and hybrid orders start on whichever path the client picked. From there the
// legal transitions are a fixed table (see Status); COMPLETED and CANCELLED
// are terminal.
//
// The aggregate enforces state and payload rules. Authorization and the
// race-free persistence of transitions (conditional updates keyed on the
// expected current status) are the application layer's responsibility.
package order
