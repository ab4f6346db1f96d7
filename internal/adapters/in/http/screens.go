package http

import (
	"net/http"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateScreen handles POST /api/v1/screens.
func (s *Server) CreateScreen(ctx echo.Context) error {
	const operation = "create_screen"

	var req NewScreenRequest
	if err := bind(ctx, &req); err != nil {
		return s.fail(ctx, operation, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewCreateScreenCommand(kernel.NewUUID(), req.Name)
	if err != nil {
		return s.fail(ctx, operation, http.StatusBadRequest, err)
	}

	screen, err := s.handlers.CreateScreen.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.failWith(ctx, operation, err)
	}

	return ctx.JSON(http.StatusCreated, Screen{ID: screen.ID(), Name: screen.Name()})
}

// CreateStep handles POST /api/v1/screens/:id/steps.
func (s *Server) CreateStep(ctx echo.Context) error {
	const operation = "create_step"

	screenID, err := screenIDParam(ctx)
	if err != nil {
		return s.fail(ctx, operation, http.StatusBadRequest, err)
	}

	var req NewStepRequest
	if err = bind(ctx, &req); err != nil {
		return s.fail(ctx, operation, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewCreateStepCommand(kernel.NewUUID(), screenID, req.Name)
	if err != nil {
		return s.fail(ctx, operation, http.StatusBadRequest, err)
	}

	step, err := s.handlers.CreateStep.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.failWith(ctx, operation, err)
	}

	return ctx.JSON(http.StatusCreated, Step{ID: step.ID(), ScreenID: step.ScreenID(), Name: step.Name()})
}

// CreateTransition handles POST /api/v1/screens/:id/transitions. A second default
// transition from the same step is answered with 422.
func (s *Server) CreateTransition(ctx echo.Context) error {
	const operation = "create_transition"

	screenID, err := screenIDParam(ctx)
	if err != nil {
		return s.fail(ctx, operation, http.StatusBadRequest, err)
	}

	var req NewTransitionRequest
	if err = bind(ctx, &req); err != nil {
		return s.fail(ctx, operation, http.StatusBadRequest, err)
	}

	from, err := kernel.UUIDFromString(req.FromStepID)
	if err != nil {
		return s.fail(ctx, operation, http.StatusBadRequest, errs.NewValueIsInvalidErrorWithCause("fromStepId", err))
	}
	to, err := kernel.UUIDFromString(req.ToStepID)
	if err != nil {
		return s.fail(ctx, operation, http.StatusBadRequest, errs.NewValueIsInvalidErrorWithCause("toStepId", err))
	}

	cmd, err := commands.NewCreateTransitionCommand(kernel.NewUUID(), screenID, from, to, req.IsCustomRoute)
	if err != nil {
		return s.fail(ctx, operation, http.StatusBadRequest, err)
	}

	t, err := s.handlers.CreateTransition.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.failWith(ctx, operation, err)
	}

	return ctx.JSON(http.StatusCreated, Transition{
		ID:            t.ID(),
		ScreenID:      t.ScreenID(),
		FromStepID:    t.FromStepID(),
		ToStepID:      t.ToStepID(),
		IsCustomRoute: t.IsCustomRoute(),
	})
}

// GetScreenGraph handles GET /api/v1/screens/:id/graph.
func (s *Server) GetScreenGraph(ctx echo.Context) error {
	const operation = "get_screen_graph"

	screenID, err := screenIDParam(ctx)
	if err != nil {
		return s.fail(ctx, operation, http.StatusBadRequest, err)
	}

	query, err := queries.NewGetScreenGraphQuery(screenID)
	if err != nil {
		return s.fail(ctx, operation, http.StatusBadRequest, err)
	}

	graph, err := s.handlers.GetScreenGraph.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.failWith(ctx, operation, err)
	}

	return ctx.JSON(http.StatusOK, graphFromQuery(graph))
}

func screenIDParam(ctx echo.Context) (kernel.UUID, error) {
	return uuidParam(ctx, "id")
}
