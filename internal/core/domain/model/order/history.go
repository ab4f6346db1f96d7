package order

import (
	"errors"
	"fmt"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

// ErrHistoryEntryIsNotConstructed is returned when using a zero-value HistoryEntry.
var ErrHistoryEntryIsNotConstructed = errors.New("HistoryEntry must be created via a history constructor")

// Action names what happened to an order in a HistoryEntry.
type Action string

const (
	ActionCreated  Action = "Created"
	ActionApproved Action = "Approved"
	ActionRejected Action = "Rejected"
)

// ParseAction validates a persisted action name.
func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionCreated, ActionApproved, ActionRejected:
		return a, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not a valid action", s))
	}
}

// HistoryEntry is one line of an order's audit trail. It is written in the same transaction
// as the change it records.
type HistoryEntry struct {
	id         kernel.UUID
	orderID    kernel.UUID
	action     Action
	fromStepID *kernel.UUID
	toStepID   kernel.UUID
	reason     string
	at         time.Time
	guard      guard.ConstructorGuard
}

// NewCreatedEntry records the creation of o on its initial step.
func NewCreatedEntry(o *Order) *HistoryEntry {
	return &HistoryEntry{
		id:       kernel.NewUUID(),
		orderID:  o.ID(),
		action:   ActionCreated,
		toStepID: o.StepID(),
		at:       o.CreatedAt(),
		guard:    guard.NewConstructorGuard(),
	}
}

// NewApprovedEntry records a move of o from fromStepID to its current step.
// Call it after MoveToStep.
func NewApprovedEntry(o *Order, fromStepID kernel.UUID) *HistoryEntry {
	return &HistoryEntry{
		id:         kernel.NewUUID(),
		orderID:    o.ID(),
		action:     ActionApproved,
		fromStepID: &fromStepID,
		toStepID:   o.StepID(),
		at:         o.UpdatedAt(),
		guard:      guard.NewConstructorGuard(),
	}
}

// NewRejectedEntry records the rejection of o. Call it after Reject.
func NewRejectedEntry(o *Order) *HistoryEntry {
	from := o.StepID()
	return &HistoryEntry{
		id:         kernel.NewUUID(),
		orderID:    o.ID(),
		action:     ActionRejected,
		fromStepID: &from,
		toStepID:   o.StepID(),
		reason:     o.RejectionReason(),
		at:         o.UpdatedAt(),
		guard:      guard.NewConstructorGuard(),
	}
}

// RestoreHistoryEntry rebuilds an entry from persistence.
func RestoreHistoryEntry(
	id kernel.UUID,
	orderID kernel.UUID,
	action Action,
	fromStepID *kernel.UUID,
	toStepID kernel.UUID,
	reason string,
	at time.Time,
) (*HistoryEntry, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), toStepID.Validate()); err != nil {
		return nil, err
	}
	if _, err := ParseAction(string(action)); err != nil {
		return nil, err
	}
	return &HistoryEntry{
		id:         id,
		orderID:    orderID,
		action:     action,
		fromStepID: fromStepID,
		toStepID:   toStepID,
		reason:     reason,
		at:         at.UTC(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the entry was built by one of the constructors.
func (h *HistoryEntry) Validate() error {
	if h == nil {
		return ErrHistoryEntryIsNotConstructed
	}
	return h.guard.Validate(ErrHistoryEntryIsNotConstructed)
}

func (h *HistoryEntry) ID() kernel.UUID          { return h.id }
func (h *HistoryEntry) OrderID() kernel.UUID     { return h.orderID }
func (h *HistoryEntry) Action() Action           { return h.action }
func (h *HistoryEntry) FromStepID() *kernel.UUID { return h.fromStepID }
func (h *HistoryEntry) ToStepID() kernel.UUID    { return h.toStepID }
func (h *HistoryEntry) Reason() string           { return h.reason }
func (h *HistoryEntry) At() time.Time            { return h.at }
