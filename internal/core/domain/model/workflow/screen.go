package workflow

import (
	"errors"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var (
	// ErrScreenNameIsRequired is returned when a Screen is created with a blank name.
	ErrScreenNameIsRequired = errs.NewValueIsRequiredError("screen name")
	// ErrScreenIsNotConstructed is returned when using a zero-value Screen.
	ErrScreenIsNotConstructed = errors.New("Screen must be created via NewScreen constructor")
)

// Screen is a named workflow container. Its Steps and Transitions reference it by id.
//
// Example:
//
//	screen, err := workflow.NewScreen(kernel.NewUUID(), "Purchase requests")
//	if err != nil {
//	    return err
//	}
type Screen struct {
	id    kernel.UUID
	name  string
	guard guard.ConstructorGuard
}

// NewScreen creates a Screen. It is also used to restore screens from persistence.
func NewScreen(id kernel.UUID, name string) (*Screen, error) {
	screen := &Screen{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		screen.setID(id),
		screen.setName(name),
	); err != nil {
		return nil, err
	}

	return screen, nil
}

// Validate reports whether the Screen was built by NewScreen.
func (s *Screen) Validate() error {
	if s == nil {
		return ErrScreenIsNotConstructed
	}
	return s.guard.Validate(ErrScreenIsNotConstructed)
}

// ID returns the screen's unique identifier.
func (s *Screen) ID() kernel.UUID {
	return s.id
}

// Name returns the screen's display name.
func (s *Screen) Name() string {
	return s.name
}

func (s *Screen) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Screen) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrScreenNameIsRequired
	}
	s.name = name
	return nil
}
