package commands

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
)

// loadOrders fetches ids and returns the orders in request order.
// Any unknown id fails the whole load with *OrderNotFoundError.
func loadOrders(ctx context.Context, repo ports.OrderRepository, ids []kernel.UUID) ([]*order.Order, error) {
	found, err := repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]*order.Order, len(found))
	for _, o := range found {
		byID[o.ID()] = o
	}

	orders := make([]*order.Order, 0, len(ids))
	var missing []kernel.UUID
	for _, id := range ids {
		o, ok := byID[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		orders = append(orders, o)
	}

	if len(missing) > 0 {
		return nil, NewOrderNotFoundError(missing)
	}
	return orders, nil
}

// normalizeOrderIDs validates ids and drops duplicates, keeping first occurrences.
func normalizeOrderIDs(ids []kernel.UUID) ([]kernel.UUID, error) {
	if len(ids) == 0 {
		return nil, ErrOrderIDsAreRequired
	}

	seen := make(map[kernel.UUID]struct{}, len(ids))
	unique := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique, nil
}
