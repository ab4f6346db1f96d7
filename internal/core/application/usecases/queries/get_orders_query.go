// Package queries contains the read-only use cases. Handlers read straight from the
// database with raw SQL and return flat response structs instead of aggregates.
package queries

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery lists orders, optionally only those sitting on one step.
//
// Example:
//
//	query, err := NewGetOrdersQuery(&reviewStepID)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	stepID *kernel.UUID
	guard  guard.ConstructorGuard
}

// NewGetOrdersQuery creates the query. A nil stepID lists every order.
func NewGetOrdersQuery(stepID *kernel.UUID) (GetOrdersQuery, error) {
	if stepID != nil {
		if err := stepID.Validate(); err != nil {
			return GetOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("stepId", err)
		}
	}
	return GetOrdersQuery{stepID: stepID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// StepID returns the step filter, or nil.
func (q GetOrdersQuery) StepID() *kernel.UUID {
	return q.stepID
}

// GetOrdersQueryResponse is the read model of one order.
type GetOrdersQueryResponse struct {
	ID              kernel.UUID
	Name            string
	Type            string
	StepID          kernel.UUID
	Status          string
	RejectionReason string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
