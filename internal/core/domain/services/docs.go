// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the marketplace. It implements business
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - PricingPolicy: A domain service deciding how a new order enters the
//     quotation lifecycle based on the ordered service's pricing mode
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
