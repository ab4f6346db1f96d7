package commands

import (
	"context"
	"time"

	"orderflow/internal/core/domain/model/order"
)

// CreateOrderCommandHandler creates orders on an existing step and records the creation in
// the order history.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // the initial step does not exist
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists the order. The initial step must exist, otherwise the graph repository's
// errs.ObjectNotFoundError is returned.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	graphRepo := uow.GraphRepository()
	orderRepo := uow.OrderRepository()
	historyRepo := uow.OrderHistoryRepository()

	if _, err := graphRepo.GetStep(ctx, cmd.StepID()); err != nil {
		return nil, err
	}

	created, err := order.NewOrder(cmd.OrderID(), cmd.Name(), cmd.Type(), cmd.StepID(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, created); err != nil {
		return nil, err
	}
	if err = historyRepo.Append(ctx, order.NewCreatedEntry(created)); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
