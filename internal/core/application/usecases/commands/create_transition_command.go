package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/workflow"
	"orderflow/internal/pkg/guard"
)

var ErrCreateTransitionCommandIsNotConstructed = errors.New(
	"CreateTransitionCommand must be created via NewCreateTransitionCommand constructor",
)

// CreateTransitionCommand adds an edge to a screen's workflow graph.
//
// Example:
//
//	// Draft -> Review is the default route, Draft -> Archive may only be requested explicitly.
//	toReview, _ := NewCreateTransitionCommand(kernel.NewUUID(), screenID, draftID, reviewID, false)
//	toArchive, _ := NewCreateTransitionCommand(kernel.NewUUID(), screenID, draftID, archiveID, true)
type CreateTransitionCommand struct {
	transition *workflow.Transition

	guard guard.ConstructorGuard
}

// NewCreateTransitionCommand validates the ids. Graph rules are checked by the handler.
func NewCreateTransitionCommand(
	transitionID kernel.UUID,
	screenID kernel.UUID,
	fromStepID kernel.UUID,
	toStepID kernel.UUID,
	isCustomRoute bool,
) (CreateTransitionCommand, error) {
	transition, err := workflow.NewTransition(transitionID, screenID, fromStepID, toStepID, isCustomRoute)
	if err != nil {
		return CreateTransitionCommand{}, err
	}

	return CreateTransitionCommand{
		transition: transition,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTransitionCommand) Validate() error {
	return c.guard.Validate(ErrCreateTransitionCommandIsNotConstructed)
}

// Transition returns the edge to create.
func (c CreateTransitionCommand) Transition() *workflow.Transition {
	return c.transition
}
