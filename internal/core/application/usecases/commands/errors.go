package commands

import (
	"errors"
	"fmt"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/pkg/errs"
)

var (
	// ErrOrderIDsAreRequired is returned when a batch command gets no order ids.
	ErrOrderIDsAreRequired = errs.NewValueIsRequiredError("orderIds")

	// ErrOrderIsRejected is the sentinel of OrderIsRejectedError.
	ErrOrderIsRejected = errors.New("order is rejected")

	// ErrInternalGraph is the sentinel of InternalGraphError.
	ErrInternalGraph = errors.New("workflow graph is inconsistent")
)

// OrderNotFoundError lists the requested order ids that do not exist.
// It unwraps to errs.ErrObjectNotFound.
type OrderNotFoundError struct {
	IDs []kernel.UUID
}

func NewOrderNotFoundError(ids []kernel.UUID) *OrderNotFoundError {
	return &OrderNotFoundError{IDs: ids}
}

func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("%s: orders [%s]", errs.ErrObjectNotFound, joinIDs(e.IDs))
}

func (e *OrderNotFoundError) Unwrap() error {
	return errs.ErrObjectNotFound
}

// OrderIsRejectedError lists orders of an approval batch that are in the terminal
// Rejected state.
type OrderIsRejectedError struct {
	IDs []kernel.UUID
}

func NewOrderIsRejectedError(ids []kernel.UUID) *OrderIsRejectedError {
	return &OrderIsRejectedError{IDs: ids}
}

func (e *OrderIsRejectedError) Error() string {
	return fmt.Sprintf("%s: orders [%s]", ErrOrderIsRejected, joinIDs(e.IDs))
}

func (e *OrderIsRejectedError) Unwrap() error {
	return ErrOrderIsRejected
}

// InternalGraphError reports an approval that could not resolve a destination because the
// workflow graph is malformed at StepID. Cause is the *services.DefaultTransitionCountError.
type InternalGraphError struct {
	StepID   kernel.UUID
	OrderIDs []kernel.UUID
	Cause    error
}

func NewInternalGraphError(group services.StepGroup, cause error) *InternalGraphError {
	return &InternalGraphError{
		StepID:   group.StepID,
		OrderIDs: group.OrderIDs(),
		Cause:    cause,
	}
}

func (e *InternalGraphError) Error() string {
	return fmt.Sprintf("%s: cannot route orders [%s] (cause: %v)", ErrInternalGraph, joinIDs(e.OrderIDs), e.Cause)
}

// Unwrap exposes both the sentinel and the cause, so errors.Is matches ErrInternalGraph
// and services.ErrDefaultTransitionCount.
func (e *InternalGraphError) Unwrap() []error {
	return []error{ErrInternalGraph, e.Cause}
}

func joinIDs(ids []kernel.UUID) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, id.String())
	}
	return strings.Join(parts, ", ")
}
