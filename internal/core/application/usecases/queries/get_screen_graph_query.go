package queries

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var (
	ErrGetScreenGraphQueryIsNotConstructed = errors.New(
		"GetScreenGraphQuery must be created via NewGetScreenGraphQuery constructor",
	)
)

// GetScreenGraphQuery loads a screen with all of its steps and transitions.
type GetScreenGraphQuery struct {
	screenID kernel.UUID
	guard    guard.ConstructorGuard
}

func NewGetScreenGraphQuery(screenID kernel.UUID) (GetScreenGraphQuery, error) {
	if err := screenID.Validate(); err != nil {
		return GetScreenGraphQuery{}, err
	}
	return GetScreenGraphQuery{screenID: screenID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetScreenGraphQuery) Validate() error {
	return q.guard.Validate(ErrGetScreenGraphQueryIsNotConstructed)
}

func (q GetScreenGraphQuery) ScreenID() kernel.UUID {
	return q.screenID
}

// GetScreenGraphQueryResponse is the whole workflow graph of one screen.
// Steps are ordered by name, transitions by source step name then destination step name.
type GetScreenGraphQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Steps       []StepView
	Transitions []TransitionView
}

// StepView is a node of GetScreenGraphQueryResponse.
type StepView struct {
	ID   kernel.UUID
	Name string
}

// TransitionView is an edge of GetScreenGraphQueryResponse.
type TransitionView struct {
	ID            kernel.UUID
	FromStepID    kernel.UUID
	ToStepID      kernel.UUID
	IsCustomRoute bool
}
