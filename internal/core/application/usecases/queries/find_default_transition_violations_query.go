package queries

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var (
	ErrFindDefaultTransitionViolationsQueryIsNotConstructed = errors.New(
		"FindDefaultTransitionViolationsQuery must be created via NewFindDefaultTransitionViolationsQuery constructor",
	)
)

// FindDefaultTransitionViolationsQuery finds steps that hold active orders but do not have
// exactly one default outgoing transition. Approving any of those orders without a direct
// step would fail, so the result is what the graph integrity job reports.
type FindDefaultTransitionViolationsQuery struct {
	guard guard.ConstructorGuard
}

func NewFindDefaultTransitionViolationsQuery() FindDefaultTransitionViolationsQuery {
	return FindDefaultTransitionViolationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q FindDefaultTransitionViolationsQuery) Validate() error {
	return q.guard.Validate(ErrFindDefaultTransitionViolationsQueryIsNotConstructed)
}

// FindDefaultTransitionViolationsQueryResponse describes one offending step.
type FindDefaultTransitionViolationsQueryResponse struct {
	ScreenID           kernel.UUID
	StepID             kernel.UUID
	StepName           string
	DefaultTransitions int
	ActiveOrders       int
}
