package commands

import (
	"context"

	"orderflow/internal/core/domain/model/workflow"
)

// CreateScreenCommandHandler persists new screens.
type CreateScreenCommandHandler struct {
	uowFactory GraphUoWFactory
}

func NewCreateScreenCommandHandler(uowFactory GraphUoWFactory) CreateScreenCommandHandler {
	return CreateScreenCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the screen in its own transaction.
func (h CreateScreenCommandHandler) Handle(ctx context.Context, cmd CreateScreenCommand) (*workflow.Screen, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	screen, err := workflow.NewScreen(cmd.ScreenID(), cmd.Name())
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

	if err = uow.GraphRepository().AddScreen(ctx, screen); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return screen, nil
}
