package commands

import (
	"errors"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/workflow"
	"orderflow/internal/pkg/guard"
)

var ErrCreateScreenCommandIsNotConstructed = errors.New(
	"CreateScreenCommand must be created via NewCreateScreenCommand constructor",
)

// CreateScreenCommand registers a new workflow container.
type CreateScreenCommand struct {
	screenID kernel.UUID
	name     string

	guard guard.ConstructorGuard
}

// NewCreateScreenCommand validates the id and name.
func NewCreateScreenCommand(screenID kernel.UUID, name string) (CreateScreenCommand, error) {
	name = strings.TrimSpace(name)

	var nameErr error
	if name == "" {
		nameErr = workflow.ErrScreenNameIsRequired
	}
	if err := errors.Join(screenID.Validate(), nameErr); err != nil {
		return CreateScreenCommand{}, err
	}

	return CreateScreenCommand{
		screenID: screenID,
		name:     name,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateScreenCommand) Validate() error {
	return c.guard.Validate(ErrCreateScreenCommandIsNotConstructed)
}

func (c CreateScreenCommand) ScreenID() kernel.UUID { return c.screenID }
func (c CreateScreenCommand) Name() string          { return c.name }
