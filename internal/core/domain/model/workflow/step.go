package workflow

import (
	"errors"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var (
	// ErrStepNameIsRequired is returned when a Step is created with a blank name.
	ErrStepNameIsRequired = errs.NewValueIsRequiredError("step name")
	// ErrStepIsNotConstructed is returned when using a zero-value Step.
	ErrStepIsNotConstructed = errors.New("Step must be created via NewStep constructor")
)

// Step is a node of a Screen's workflow graph and the current location of zero or more orders.
// A Step never changes Screen.
type Step struct {
	id       kernel.UUID
	screenID kernel.UUID
	name     string
	guard    guard.ConstructorGuard
}

// NewStep creates a Step belonging to screenID. It is also used to restore steps from persistence.
//
// Example:
//
//	review, err := workflow.NewStep(kernel.NewUUID(), screen.ID(), "Review")
func NewStep(id kernel.UUID, screenID kernel.UUID, name string) (*Step, error) {
	step := &Step{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		step.setID(id),
		step.setScreenID(screenID),
		step.setName(name),
	); err != nil {
		return nil, err
	}

	return step, nil
}

// Validate reports whether the Step was built by NewStep.
func (s *Step) Validate() error {
	if s == nil {
		return ErrStepIsNotConstructed
	}
	return s.guard.Validate(ErrStepIsNotConstructed)
}

// ID returns the step's unique identifier.
func (s *Step) ID() kernel.UUID {
	return s.id
}

// ScreenID returns the id of the Screen owning the step.
func (s *Step) ScreenID() kernel.UUID {
	return s.screenID
}

// Name returns the step's display name.
func (s *Step) Name() string {
	return s.name
}

// BelongsTo reports whether the step is part of screenID.
func (s *Step) BelongsTo(screenID kernel.UUID) bool {
	return s.screenID.IsEqual(screenID)
}

func (s *Step) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Step) setScreenID(screenID kernel.UUID) error {
	if err := screenID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("screenId", err)
	}
	s.screenID = screenID
	return nil
}

func (s *Step) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrStepNameIsRequired
	}
	s.name = name
	return nil
}
