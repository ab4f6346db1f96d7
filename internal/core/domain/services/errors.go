package services

import (
	"errors"
	"fmt"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
)

var (
	// ErrDefaultTransitionCount is the sentinel of DefaultTransitionCountError.
	ErrDefaultTransitionCount = errors.New("step must have exactly one default transition")

	// ErrForbiddenRoute is the sentinel of ForbiddenRouteError.
	ErrForbiddenRoute = errors.New("requested step is not reachable")
)

// DefaultTransitionCountError reports a source step whose default outgoing transitions do not
// number exactly one. The workflow graph is malformed; the error is not retryable.
type DefaultTransitionCountError struct {
	StepID kernel.UUID
	Count  int
}

func NewDefaultTransitionCountError(stepID kernel.UUID, count int) *DefaultTransitionCountError {
	return &DefaultTransitionCountError{
		StepID: stepID,
		Count:  count,
	}
}

func (e *DefaultTransitionCountError) Error() string {
	return fmt.Sprintf("%s: step %s has %d", ErrDefaultTransitionCount, e.StepID, e.Count)
}

func (e *DefaultTransitionCountError) Unwrap() error {
	return ErrDefaultTransitionCount
}

// ForbiddenRouteError reports orders whose origin has no transition to the requested step.
type ForbiddenRouteError struct {
	DestinationStepID kernel.UUID
	OrderIDs          []kernel.UUID
}

func NewForbiddenRouteError(destinationStepID kernel.UUID, orderIDs []kernel.UUID) *ForbiddenRouteError {
	return &ForbiddenRouteError{
		DestinationStepID: destinationStepID,
		OrderIDs:          orderIDs,
	}
}

func (e *ForbiddenRouteError) Error() string {
	ids := make([]string, 0, len(e.OrderIDs))
	for _, id := range e.OrderIDs {
		ids = append(ids, id.String())
	}
	return fmt.Sprintf("%s: step %s for orders [%s]", ErrForbiddenRoute, e.DestinationStepID, strings.Join(ids, ", "))
}

func (e *ForbiddenRouteError) Unwrap() error {
	return ErrForbiddenRoute
}
