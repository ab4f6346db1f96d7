package http

import (
	"net/http"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// ApproveOrders handles POST /api/v1/orders/approve - moves orders to their next step.
func (s *Server) ApproveOrders(ctx echo.Context) error {
	const operation = "approve_orders"

	var req ApproveOrdersRequest
	if err := bind(ctx, &req); err != nil {
		return s.fail(ctx, operation, http.StatusBadRequest, err)
	}

	ids, err := kernel.UUIDsFromStrings(req.OrderIDs)
	if err != nil {
		return s.fail(ctx, operation, http.StatusBadRequest, err)
	}

	var directStep *kernel.UUID
	if req.DirectStep != nil {
		step, err := kernel.UUIDFromString(*req.DirectStep)
		if err != nil {
			return s.fail(ctx, operation, http.StatusBadRequest, err)
		}
		directStep = &step
	}

	cmd, err := commands.NewApproveOrdersCommand(ids, directStep)
	if err != nil {
		return s.fail(ctx, operation, http.StatusBadRequest, err)
	}

	moved, err := s.handlers.ApproveOrders.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.failWith(ctx, operation, err)
	}

	mode := metrics.ModeDefault
	if directStep != nil {
		mode = metrics.ModeDirect
	}
	s.metrics.OrdersApproved(mode, len(moved))

	response := make([]Order, 0, len(moved))
	for _, o := range moved {
		response = append(response, orderFromDomain(o))
	}
	return ctx.JSON(http.StatusOK, response)
}

// RejectOrders handles POST /api/v1/orders/reject. Orders that are already rejected keep
// their original reason.
func (s *Server) RejectOrders(ctx echo.Context) error {
	const operation = "reject_orders"

	var req RejectOrdersRequest
	if err := bind(ctx, &req); err != nil {
		return s.fail(ctx, operation, http.StatusBadRequest, err)
	}

	ids, err := kernel.UUIDsFromStrings(req.OrderIDs)
	if err != nil {
		return s.fail(ctx, operation, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewRejectOrdersCommand(ids, req.Reason)
	if err != nil {
		return s.fail(ctx, operation, http.StatusBadRequest, err)
	}

	rejected, err := s.handlers.RejectOrders.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.failWith(ctx, operation, err)
	}

	s.metrics.OrdersRejected(rejected)
	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /api/v1/orders - places a new order on a step.
func (s *Server) CreateOrder(ctx echo.Context) error {
	const operation = "create_order"

	var req NewOrderRequest
	if err := bind(ctx, &req); err != nil {
		return s.fail(ctx, operation, http.StatusBadRequest, err)
	}

	orderType, err := order.ParseType(req.Type)
	if err != nil {
		return s.fail(ctx, operation, http.StatusBadRequest, err)
	}

	stepID, err := kernel.UUIDFromString(req.StepID)
	if err != nil {
		return s.fail(ctx, operation, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), req.Name, orderType, stepID)
	if err != nil {
		return s.fail(ctx, operation, http.StatusBadRequest, err)
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.failWith(ctx, operation, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromDomain(created))
}

// GetOrders handles GET /api/v1/orders with an optional stepId filter.
func (s *Server) GetOrders(ctx echo.Context) error {
	const operation = "get_orders"

	stepID, err := optionalUUIDQuery(ctx, "stepId")
	if err != nil {
		return s.fail(ctx, operation, http.StatusBadRequest, err)
	}

	query, err := queries.NewGetOrdersQuery(stepID)
	if err != nil {
		return s.fail(ctx, operation, http.StatusBadRequest, err)
	}

	orders, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.failWith(ctx, operation, err)
	}

	response := make([]Order, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderFromQuery(o))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrderHistory handles GET /api/v1/orders/:id/history.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	const operation = "get_order_history"

	orderID, err := uuidParam(ctx, "id")
	if err != nil {
		return s.fail(ctx, operation, http.StatusBadRequest, err)
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID)
	if err != nil {
		return s.fail(ctx, operation, http.StatusBadRequest, err)
	}

	entries, err := s.handlers.GetOrderHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.failWith(ctx, operation, err)
	}

	response := make([]HistoryEntry, 0, len(entries))
	for _, e := range entries {
		response = append(response, historyFromQuery(e))
	}
	return ctx.JSON(http.StatusOK, response)
}
