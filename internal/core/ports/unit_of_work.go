package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Repositories returned after Begin run inside the transaction.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. It is a no-op after Commit.
	Rollback(ctx context.Context) error

	// GraphRepository returns the screen/step/transition repository bound to the transaction.
	GraphRepository() GraphRepository

	// OrderRepository returns the order repository bound to the transaction.
	OrderRepository() OrderRepository

	// OrderHistoryRepository returns the history repository bound to the transaction.
	OrderHistoryRepository() OrderHistoryRepository
}
