package commands

import (
	"context"
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
)

// ApproveOrdersCommandHandler moves a batch of orders along the workflow graph.
//
// The whole batch runs in one unit of work. Every check and every destination is settled
// before the first write, so a failing batch leaves all orders where they were. Writes are
// issued once per distinct current step, not once per order.
//
// Example:
//
//	handler := NewApproveOrdersCommandHandler(uowFactory, services.CurrentStepOrigin)
//	moved, err := handler.Handle(ctx, cmd)
//	var graphErr *InternalGraphError
//	switch {
//	case errors.As(err, &graphErr):
//	    // step graphErr.StepID needs exactly one default transition
//	case errors.Is(err, services.ErrForbiddenRoute):
//	    // direct step not reachable for some orders
//	}
type ApproveOrdersCommandHandler struct {
	uowFactory UoWFactory
	origin     services.OriginKey
}

// NewApproveOrdersCommandHandler creates the handler. origin selects the order attribute a
// direct step is checked against; nil means services.CurrentStepOrigin.
func NewApproveOrdersCommandHandler(uowFactory UoWFactory, origin services.OriginKey) ApproveOrdersCommandHandler {
	if origin == nil {
		origin = services.CurrentStepOrigin
	}
	return ApproveOrdersCommandHandler{
		uowFactory: uowFactory,
		origin:     origin,
	}
}

// Handle approves the batch and returns the moved orders grouped by their former step.
//
// Errors:
//   - *OrderNotFoundError when an id is unknown
//   - *OrderIsRejectedError when an order is already rejected
//   - *services.ForbiddenRouteError when the direct step is unreachable for some order
//   - *InternalGraphError when a step has zero or several default transitions
func (h ApproveOrdersCommandHandler) Handle(ctx context.Context, cmd ApproveOrdersCommand) ([]*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	graphRepo := uow.GraphRepository()
	historyRepo := uow.OrderHistoryRepository()

	orders, err := loadOrders(ctx, orderRepo, cmd.OrderIDs())
	if err != nil {
		return nil, err
	}

	if rejected := rejectedOrderIDs(orders); len(rejected) > 0 {
		return nil, NewOrderIsRejectedError(rejected)
	}

	router, err := services.NewWorkflowRouter(graphRepo, h.origin)
	if err != nil {
		return nil, err
	}

	if cmd.DirectStep() != nil {
		if err = router.AuthorizeDirectStep(ctx, orders, *cmd.DirectStep()); err != nil {
			return nil, err
		}
	}

	groups := services.GroupOrdersByStep(orders)
	destinations, err := h.resolveDestinations(ctx, router, groups, cmd.DirectStep())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	moved := make([]*order.Order, 0, len(orders))
	for i, group := range groups {
		entries := make([]*order.HistoryEntry, 0, len(group.Orders))
		for _, o := range group.Orders {
			if err = o.MoveToStep(destinations[i], now); err != nil {
				return nil, err
			}
			entries = append(entries, order.NewApprovedEntry(o, group.StepID))
		}

		if err = orderRepo.BulkSetStep(ctx, group.OrderIDs(), destinations[i], now); err != nil {
			return nil, err
		}
		if err = historyRepo.Append(ctx, entries...); err != nil {
			return nil, err
		}

		moved = append(moved, group.Orders...)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return moved, nil
}

// resolveDestinations returns one destination per group, index-aligned with groups.
func (h ApproveOrdersCommandHandler) resolveDestinations(
	ctx context.Context,
	router *services.WorkflowRouter,
	groups []services.StepGroup,
	directStep *kernel.UUID,
) ([]kernel.UUID, error) {
	destinations := make([]kernel.UUID, len(groups))
	for i, group := range groups {
		if directStep != nil {
			destinations[i] = *directStep
			continue
		}

		next, err := router.ResolveDefault(ctx, group.StepID)
		var countErr *services.DefaultTransitionCountError
		if errors.As(err, &countErr) {
			return nil, NewInternalGraphError(group, countErr)
		}
		if err != nil {
			return nil, err
		}
		destinations[i] = next
	}
	return destinations, nil
}

func rejectedOrderIDs(orders []*order.Order) []kernel.UUID {
	var ids []kernel.UUID
	for _, o := range orders {
		if o.IsRejected() {
			ids = append(ids, o.ID())
		}
	}
	return ids
}
