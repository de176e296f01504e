// Package kernel contains the shared value objects of the domain model:
// identifiers, monetary amounts, and the acting user.
//
// All kernel types are immutable value objects. Their zero values are invalid
// and rejected by Validate; instances must be created through the provided
// constructor functions. This keeps entities and aggregates built on top of
// them valid by construction.
package kernel
