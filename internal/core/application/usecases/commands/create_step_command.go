package commands

import (
	"errors"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/workflow"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrCreateStepCommandIsNotConstructed = errors.New(
	"CreateStepCommand must be created via NewCreateStepCommand constructor",
)

// CreateStepCommand adds a node to a screen's workflow graph.
type CreateStepCommand struct {
	stepID   kernel.UUID
	screenID kernel.UUID
	name     string

	guard guard.ConstructorGuard
}

// NewCreateStepCommand validates the ids and name.
func NewCreateStepCommand(stepID kernel.UUID, screenID kernel.UUID, name string) (CreateStepCommand, error) {
	name = strings.TrimSpace(name)

	var screenErr, nameErr error
	if err := screenID.Validate(); err != nil {
		screenErr = errs.NewValueIsRequiredErrorWithCause("screenId", err)
	}
	if name == "" {
		nameErr = workflow.ErrStepNameIsRequired
	}
	if err := errors.Join(stepID.Validate(), screenErr, nameErr); err != nil {
		return CreateStepCommand{}, err
	}

	return CreateStepCommand{
		stepID:   stepID,
		screenID: screenID,
		name:     name,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStepCommand) Validate() error {
	return c.guard.Validate(ErrCreateStepCommandIsNotConstructed)
}

func (c CreateStepCommand) StepID() kernel.UUID   { return c.stepID }
func (c CreateStepCommand) ScreenID() kernel.UUID { return c.screenID }
func (c CreateStepCommand) Name() string          { return c.name }
