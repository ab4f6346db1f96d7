// Package commands contains the use cases that modify system state.
// Every command follows the same pattern: a validated command value built by its
// constructor, and a handler that runs the change inside one unit of work.
package commands

import (
	"context"

	"orderflow/internal/core/ports"
)

// Unit of Work interfaces scoped to what each handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// GraphRepoFactory provides access to the workflow graph within a transaction.
	GraphRepoFactory interface {
		GraphRepository() ports.GraphRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// HistoryRepoFactory provides access to the order history within a transaction.
	HistoryRepoFactory interface {
		OrderHistoryRepository() ports.OrderHistoryRepository
	}

	// GraphUoW manages transactions for graph administration.
	GraphUoW interface {
		TxManager
		GraphRepoFactory
	}

	// GraphUoWFactory creates new graph unit of work instances.
	GraphUoWFactory interface {
		Create() GraphUoW
	}

	// UoW manages transactions that read the graph and change orders and their history.
	//
	// Example:
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil {
	//       return err
	//   }
	//   defer func() { _ = uow.Rollback(ctx) }()
	//
	//   orders, err := uow.OrderRepository().GetByIDs(ctx, ids)
	//   // ... route and move orders
	//
	//   return uow.Commit(ctx)
	UoW interface {
		TxManager
		GraphRepoFactory
		OrderRepoFactory
		HistoryRepoFactory
	}

	// UoWFactory creates new unit of work instances for order operations.
	UoWFactory interface {
		Create() UoW
	}
)
