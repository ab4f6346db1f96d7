package commands

import (
	"context"

	"orderflow/internal/core/domain/model/workflow"
)

// CreateStepCommandHandler persists new steps on an existing screen.
type CreateStepCommandHandler struct {
	uowFactory GraphUoWFactory
}

func NewCreateStepCommandHandler(uowFactory GraphUoWFactory) CreateStepCommandHandler {
	return CreateStepCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the step. Returns errs.ObjectNotFoundError when the screen is unknown.
func (h CreateStepCommandHandler) Handle(ctx context.Context, cmd CreateStepCommand) (*workflow.Step, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	step, err := workflow.NewStep(cmd.StepID(), cmd.ScreenID(), cmd.Name())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	graphRepo := uow.GraphRepository()

	if _, err = graphRepo.GetScreen(ctx, cmd.ScreenID()); err != nil {
		return nil, err
	}
	if err = graphRepo.AddStep(ctx, step); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return step, nil
}
