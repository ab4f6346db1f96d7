package workflow

import (
	"errors"
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var (
	// ErrTransitionIsNotConstructed is returned when using a zero-value Transition.
	ErrTransitionIsNotConstructed = errors.New("Transition must be created via NewTransition constructor")

	// ErrCrossScreenTransition is returned when an endpoint of a Transition belongs to
	// another Screen than the Transition itself.
	ErrCrossScreenTransition = errors.New("transition endpoints must belong to the transition's screen")

	// ErrDuplicateDefaultTransition is returned when a source Step would get a second
	// default outgoing Transition.
	ErrDuplicateDefaultTransition = errors.New("step already has a default outgoing transition")
)

// Transition is a directed edge of a Screen's workflow graph.
//
// A default Transition (IsCustomRoute false) is the edge an approval follows when no
// direct step is requested. A custom Transition only authorizes direct-step approvals.
type Transition struct {
	id            kernel.UUID
	screenID      kernel.UUID
	fromStepID    kernel.UUID
	toStepID      kernel.UUID
	isCustomRoute bool
	guard         guard.ConstructorGuard
}

// NewTransition creates a Transition. It is also used to restore transitions from persistence.
// Structural checks that need the endpoint Steps are done by CheckTransition.
//
// Example:
//
//	edge, err := workflow.NewTransition(kernel.NewUUID(), screen.ID(), draft.ID(), review.ID(), false)
func NewTransition(
	id kernel.UUID,
	screenID kernel.UUID,
	fromStepID kernel.UUID,
	toStepID kernel.UUID,
	isCustomRoute bool,
) (*Transition, error) {
	transition := &Transition{
		isCustomRoute: isCustomRoute,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transition.setID(id),
		transition.setScreenID(screenID),
		transition.setFromStepID(fromStepID),
		transition.setToStepID(toStepID),
	); err != nil {
		return nil, err
	}

	return transition, nil
}

// Validate reports whether the Transition was built by NewTransition.
func (t *Transition) Validate() error {
	if t == nil {
		return ErrTransitionIsNotConstructed
	}
	return t.guard.Validate(ErrTransitionIsNotConstructed)
}

// ID returns the transition's unique identifier.
func (t *Transition) ID() kernel.UUID {
	return t.id
}

// ScreenID returns the id of the Screen owning the transition.
func (t *Transition) ScreenID() kernel.UUID {
	return t.screenID
}

// FromStepID returns the source step id.
func (t *Transition) FromStepID() kernel.UUID {
	return t.fromStepID
}

// ToStepID returns the destination step id.
func (t *Transition) ToStepID() kernel.UUID {
	return t.toStepID
}

// IsCustomRoute reports whether the transition is only usable as a direct-step override.
func (t *Transition) IsCustomRoute() bool {
	return t.isCustomRoute
}

// IsDefault is the negation of IsCustomRoute.
func (t *Transition) IsDefault() bool {
	return !t.isCustomRoute
}

// DefaultTransitions returns the default transitions of ts, preserving their order.
func DefaultTransitions(ts []*Transition) []*Transition {
	defaults := make([]*Transition, 0, 1)
	for _, t := range ts {
		if t.IsDefault() {
			defaults = append(defaults, t)
		}
	}
	return defaults
}

// CheckTransition verifies that candidate can be added to its Screen.
//
// from and to are the candidate's endpoint Steps, outgoing the Transitions already
// stored with from as their source. It returns ErrCrossScreenTransition when an endpoint
// lies outside the candidate's Screen, and ErrDuplicateDefaultTransition when candidate is
// a default Transition and from already has one.
func CheckTransition(candidate *Transition, from *Step, to *Step, outgoing []*Transition) error {
	if err := errors.Join(candidate.Validate(), from.Validate(), to.Validate()); err != nil {
		return err
	}

	if !from.ID().IsEqual(candidate.FromStepID()) || !to.ID().IsEqual(candidate.ToStepID()) {
		return errs.NewValueIsInvalidErrorWithCause("transition endpoints",
			fmt.Errorf("steps %s -> %s do not match transition %s -> %s",
				from.ID(), to.ID(), candidate.FromStepID(), candidate.ToStepID()))
	}

	if !from.BelongsTo(candidate.ScreenID()) || !to.BelongsTo(candidate.ScreenID()) {
		return fmt.Errorf("%w: screen %s", ErrCrossScreenTransition, candidate.ScreenID())
	}

	if candidate.IsCustomRoute() {
		return nil
	}
	if existing := DefaultTransitions(outgoing); len(existing) > 0 {
		return fmt.Errorf("%w: step %s -> %s", ErrDuplicateDefaultTransition, from.ID(), existing[0].ToStepID())
	}
	return nil
}

func (t *Transition) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Transition) setScreenID(screenID kernel.UUID) error {
	if err := screenID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("screenId", err)
	}
	t.screenID = screenID
	return nil
}

func (t *Transition) setFromStepID(stepID kernel.UUID) error {
	if err := stepID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("fromStepId", err)
	}
	t.fromStepID = stepID
	return nil
}

func (t *Transition) setToStepID(stepID kernel.UUID) error {
	if err := stepID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("toStepId", err)
	}
	t.toStepID = stepID
	return nil
}
