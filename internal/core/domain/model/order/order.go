package order

import (
	"errors"
	"strings"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder
	// or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrNameIsRequired is returned when an order is created with a blank name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrOrderIsRejected is returned when moving an order that is in the terminal Rejected state.
	ErrOrderIsRejected = errors.New("order is rejected")
)

// Order is a unit of work located at exactly one Step.
//
// Order follows these invariants:
//   - Must have a valid id, a non-blank name, a valid Type and a current step
//   - The current step changes only through MoveToStep
//   - Once Rejected, the order never moves again
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), "Laptop purchase", order.Standard, draft.ID(), time.Now())
//	if err != nil {
//	    return err
//	}
//	if err = o.MoveToStep(review.ID(), time.Now()); err != nil {
//	    return err
//	}
type Order struct {
	id              kernel.UUID
	name            string
	orderType       Type
	stepID          kernel.UUID
	status          Status
	rejectionReason string
	createdAt       time.Time
	updatedAt       time.Time
	guard           guard.ConstructorGuard
}

// NewOrder creates an Active order on its initial step.
func NewOrder(id kernel.UUID, name string, orderType Type, stepID kernel.UUID, now time.Time) (*Order, error) {
	o := &Order{
		status:    Active,
		createdAt: now.UTC(),
		updatedAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setName(name),
		o.setType(orderType),
		o.setStepID(stepID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an Order from its persisted state.
func RestoreOrder(
	id kernel.UUID,
	name string,
	orderType Type,
	stepID kernel.UUID,
	status Status,
	rejectionReason string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		rejectionReason: rejectionReason,
		createdAt:       createdAt.UTC(),
		updatedAt:       updatedAt.UTC(),
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setName(name),
		o.setType(orderType),
		o.setStepID(stepID),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate reports whether the order was built by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Name returns the order's display name.
func (o *Order) Name() string {
	return o.name
}

// Type returns the order category.
func (o *Order) Type() Type {
	return o.orderType
}

// StepID returns the step the order currently resides at.
func (o *Order) StepID() kernel.UUID {
	return o.stepID
}

// Status returns the lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// RejectionReason is empty unless the order was rejected with a reason.
func (o *Order) RejectionReason() string {
	return o.rejectionReason
}

// CreatedAt returns the creation time in UTC.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last move or rejection in UTC.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsRejected reports whether the order reached the terminal state.
func (o *Order) IsRejected() bool {
	return o.status.IsTerminal()
}

// MoveToStep relocates the order to stepID. The destination must have been resolved by the
// workflow router; MoveToStep only guards the order's own state.
//
// Returns ErrOrderIsRejected for rejected orders.
func (o *Order) MoveToStep(stepID kernel.UUID, at time.Time) error {
	if o.IsRejected() {
		return ErrOrderIsRejected
	}
	if err := o.setStepID(stepID); err != nil {
		return err
	}
	o.updatedAt = at.UTC()
	return nil
}

// Reject moves the order to Rejected and reports whether the state changed.
// Rejecting a rejected order keeps its original reason and returns false.
func (o *Order) Reject(reason string, at time.Time) bool {
	if o.IsRejected() {
		return false
	}
	o.status = Rejected
	o.rejectionReason = strings.TrimSpace(reason)
	o.updatedAt = at.UTC()
	return true
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	o.name = name
	return nil
}

func (o *Order) setType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setStepID(stepID kernel.UUID) error {
	if err := stepID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("stepId", err)
	}
	o.stepID = stepID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
