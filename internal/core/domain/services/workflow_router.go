package services

import (
	"context"
	"errors"
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/workflow"
)

// ErrTransitionReaderIsRequired is returned by NewWorkflowRouter for a nil reader.
var ErrTransitionReaderIsRequired = errors.New("transition reader is required")

// TransitionReader is the adjacency query surface the router needs from the graph store.
type TransitionReader interface {
	TransitionsFrom(ctx context.Context, stepID kernel.UUID) ([]*workflow.Transition, error)
	TransitionsTo(ctx context.Context, stepID kernel.UUID) ([]*workflow.Transition, error)
}

// WorkflowRouter resolves destinations on a Screen's workflow graph. It holds no state besides
// its reader and may be built per request.
//
// Example usage:
//
//	router, _ := services.NewWorkflowRouter(uow.GraphRepository(), services.CurrentStepOrigin)
//
//	next, err := router.ResolveDefault(ctx, o.StepID())
//	var countErr *services.DefaultTransitionCountError
//	if errors.As(err, &countErr) {
//	    // the graph is malformed at countErr.StepID
//	}
type WorkflowRouter struct {
	transitions TransitionReader
	origin      OriginKey
}

// NewWorkflowRouter builds a router over transitions. A nil origin selects CurrentStepOrigin.
func NewWorkflowRouter(transitions TransitionReader, origin OriginKey) (*WorkflowRouter, error) {
	if transitions == nil {
		return nil, ErrTransitionReaderIsRequired
	}
	if origin == nil {
		origin = CurrentStepOrigin
	}
	return &WorkflowRouter{
		transitions: transitions,
		origin:      origin,
	}, nil
}

// ResolveDefault returns the destination of the single default transition leaving sourceStepID.
//
// Returns *DefaultTransitionCountError when there is no default transition or more than one.
func (r *WorkflowRouter) ResolveDefault(ctx context.Context, sourceStepID kernel.UUID) (kernel.UUID, error) {
	outgoing, err := r.transitions.TransitionsFrom(ctx, sourceStepID)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("load transitions from step %s: %w", sourceStepID, err)
	}

	defaults := workflow.DefaultTransitions(outgoing)
	if len(defaults) != 1 {
		return kernel.UUID{}, NewDefaultTransitionCountError(sourceStepID, len(defaults))
	}

	return defaults[0].ToStepID(), nil
}

// ValidateCustomDestination reports whether a caller-chosen destination is reachable from
// sourceStepID, that is whether some transition leads from sourceStepID to
// destinationStepID. "Custom" names the caller's choice, not the edge: IsCustomRoute is not
// consulted, so a default edge into destinationStepID qualifies as well as a custom one.
func (r *WorkflowRouter) ValidateCustomDestination(
	ctx context.Context,
	sourceStepID kernel.UUID,
	destinationStepID kernel.UUID,
) (bool, error) {
	incoming, err := r.transitions.TransitionsTo(ctx, destinationStepID)
	if err != nil {
		return false, fmt.Errorf("load transitions to step %s: %w", destinationStepID, err)
	}
	return ReachableFrom(incoming, sourceStepID), nil
}

// AuthorizeDirectStep checks every order against destinationStepID using the router's
// OriginKey. It returns *ForbiddenRouteError listing every order that cannot take the route,
// so a batch is either fully authorized or not at all.
func (r *WorkflowRouter) AuthorizeDirectStep(
	ctx context.Context,
	orders []*order.Order,
	destinationStepID kernel.UUID,
) error {
	incoming, err := r.transitions.TransitionsTo(ctx, destinationStepID)
	if err != nil {
		return fmt.Errorf("load transitions to step %s: %w", destinationStepID, err)
	}

	var forbidden []kernel.UUID
	for _, o := range orders {
		if !ReachableFrom(incoming, r.origin(o)) {
			forbidden = append(forbidden, o.ID())
		}
	}

	if len(forbidden) > 0 {
		return NewForbiddenRouteError(destinationStepID, forbidden)
	}
	return nil
}

// ReachableFrom reports whether any of incoming starts at origin.
func ReachableFrom(incoming []*workflow.Transition, origin kernel.UUID) bool {
	for _, t := range incoming {
		if t.FromStepID().IsEqual(origin) {
			return true
		}
	}
	return false
}
