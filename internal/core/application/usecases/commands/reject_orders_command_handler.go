package commands

import (
	"context"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// RejectOrdersCommandHandler rejects a batch of orders.
//
// Rejection is idempotent: orders already rejected keep their original reason and are not
// written again, and the call still succeeds. The workflow graph is never consulted.
type RejectOrdersCommandHandler struct {
	uowFactory UoWFactory
}

// NewRejectOrdersCommandHandler creates the handler.
func NewRejectOrdersCommandHandler(uowFactory UoWFactory) RejectOrdersCommandHandler {
	return RejectOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle rejects every active order of the batch with one BulkReject call and returns how
// many orders changed. Returns *OrderNotFoundError when an id is unknown; nothing is
// written in that case.
func (h RejectOrdersCommandHandler) Handle(ctx context.Context, cmd RejectOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	historyRepo := uow.OrderHistoryRepository()

	orders, err := loadOrders(ctx, orderRepo, cmd.OrderIDs())
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	ids := make([]kernel.UUID, 0, len(orders))
	entries := make([]*order.HistoryEntry, 0, len(orders))
	for _, o := range orders {
		if !o.Reject(cmd.Reason(), now) {
			continue
		}
		ids = append(ids, o.ID())
		entries = append(entries, order.NewRejectedEntry(o))
	}

	if len(ids) == 0 {
		return 0, nil
	}

	if err = orderRepo.BulkReject(ctx, ids, cmd.Reason(), now); err != nil {
		return 0, err
	}
	if err = historyRepo.Append(ctx, entries...); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return len(ids), nil
}
