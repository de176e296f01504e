// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and compare-and-set persistence.
package commands

import (
	"context"

	"pipetgo/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// LabServiceRepoFactory provides access to the catalog repository within a transaction.
	LabServiceRepoFactory interface {
		LabServiceRepository() ports.LabServiceRepository
	}

	// LabRepoFactory provides access to the lab repository within a transaction.
	LabRepoFactory interface {
		LabRepository() ports.LabRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by the quote and status transition commands.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderingUoW manages transactions that read the catalog while writing
	// orders. Used by order creation and custom quote requests, which both
	// consult the ordered service's pricing mode.
	OrderingUoW interface {
		TxManager
		OrderRepoFactory
		LabServiceRepoFactory
	}

	// OrderingUoWFactory creates new ordering unit of work instances.
	OrderingUoWFactory interface {
		Create() OrderingUoW
	}

	// CatalogUoW manages transactions for catalog maintenance.
	// Used by lab service creation and updates.
	CatalogUoW interface {
		TxManager
		LabServiceRepoFactory
		LabRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}
)
