// Package ports defines the persistence contracts of the workflow domain.
// Core code depends on these interfaces only; adapters under internal/adapters implement them.
package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/workflow"
)

// GraphReader is the read-only query surface over screens, steps and transitions.
// Lookups by id return errs.ObjectNotFoundError when nothing matches; list lookups
// return an empty slice instead.
type GraphReader interface {
	// GetScreen retrieves a screen by id.
	GetScreen(ctx context.Context, id kernel.UUID) (*workflow.Screen, error)

	// GetStep retrieves a step by id.
	GetStep(ctx context.Context, id kernel.UUID) (*workflow.Step, error)

	// StepsOfScreen lists the steps of a screen ordered by name.
	StepsOfScreen(ctx context.Context, screenID kernel.UUID) ([]*workflow.Step, error)

	// TransitionsOfScreen lists every transition of a screen.
	TransitionsOfScreen(ctx context.Context, screenID kernel.UUID) ([]*workflow.Transition, error)

	// TransitionsFrom lists the transitions whose source is stepID.
	TransitionsFrom(ctx context.Context, stepID kernel.UUID) ([]*workflow.Transition, error)

	// TransitionsTo lists the transitions whose destination is stepID.
	TransitionsTo(ctx context.Context, stepID kernel.UUID) ([]*workflow.Transition, error)
}

// GraphRepository adds graph administration to GraphReader.
// Structural rules (same-screen endpoints, single default transition) are checked by
// the caller with workflow.CheckTransition before AddTransition.
type GraphRepository interface {
	GraphReader

	// AddScreen persists a new screen.
	AddScreen(ctx context.Context, screen *workflow.Screen) error

	// AddStep persists a new step. The owning screen must exist.
	AddStep(ctx context.Context, step *workflow.Step) error

	// AddTransition persists a new transition. Both endpoint steps must exist.
	AddTransition(ctx context.Context, transition *workflow.Transition) error
}
