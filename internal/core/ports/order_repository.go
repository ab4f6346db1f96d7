package ports

import (
	"context"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. Its step must exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id or returns errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByIDs retrieves the orders matching ids. Unknown ids are skipped, so callers
	// compare the result with their request. Inside a transaction the returned rows stay
	// locked until commit, so a following BulkSetStep applies to the orders just read.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error)

	// BulkSetStep moves every order of ids to stepID in one statement.
	// Returns errs.ObjectNotFoundError if any id is unknown.
	BulkSetStep(ctx context.Context, ids []kernel.UUID, stepID kernel.UUID, at time.Time) error

	// BulkReject moves every order of ids to the Rejected status with reason in one statement.
	// Returns errs.ObjectNotFoundError if any id is unknown.
	BulkReject(ctx context.Context, ids []kernel.UUID, reason string, at time.Time) error
}

// OrderHistoryRepository stores the audit trail of order movements.
type OrderHistoryRepository interface {
	// Append persists entries. An empty call is a no-op.
	Append(ctx context.Context, entries ...*order.HistoryEntry) error
}
