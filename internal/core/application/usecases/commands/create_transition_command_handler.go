package commands

import (
	"context"

	"orderflow/internal/core/domain/model/workflow"
)

// CreateTransitionCommandHandler persists new transitions after checking the graph rules.
//
// Errors:
//   - errs.ObjectNotFoundError when an endpoint step is unknown
//   - workflow.ErrCrossScreenTransition when an endpoint belongs to another screen
//   - workflow.ErrDuplicateDefaultTransition when the source already has a default transition
type CreateTransitionCommandHandler struct {
	uowFactory GraphUoWFactory
}

func NewCreateTransitionCommandHandler(uowFactory GraphUoWFactory) CreateTransitionCommandHandler {
	return CreateTransitionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the transition in one transaction with the checks it depends on.
func (h CreateTransitionCommandHandler) Handle(ctx context.Context, cmd CreateTransitionCommand) (*workflow.Transition, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	candidate := cmd.Transition()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	graphRepo := uow.GraphRepository()

	from, err := graphRepo.GetStep(ctx, candidate.FromStepID())
	if err != nil {
		return nil, err
	}
	to, err := graphRepo.GetStep(ctx, candidate.ToStepID())
	if err != nil {
		return nil, err
	}
	outgoing, err := graphRepo.TransitionsFrom(ctx, candidate.FromStepID())
	if err != nil {
		return nil, err
	}

	if err = workflow.CheckTransition(candidate, from, to, outgoing); err != nil {
		return nil, err
	}
	if err = graphRepo.AddTransition(ctx, candidate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return candidate, nil
}
