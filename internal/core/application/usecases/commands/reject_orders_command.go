package commands

import (
	"errors"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrRejectOrdersCommandIsNotConstructed = errors.New(
	"RejectOrdersCommand must be created via NewRejectOrdersCommand constructor",
)

// RejectOrdersCommand moves a batch of orders to the terminal Rejected state.
type RejectOrdersCommand struct {
	orderIDs []kernel.UUID
	reason   string

	guard guard.ConstructorGuard
}

// NewRejectOrdersCommand validates the batch. The reason is optional and trimmed.
func NewRejectOrdersCommand(orderIDs []kernel.UUID, reason string) (RejectOrdersCommand, error) {
	unique, err := normalizeOrderIDs(orderIDs)
	if err != nil {
		return RejectOrdersCommand{}, err
	}

	return RejectOrdersCommand{
		orderIDs: unique,
		reason:   strings.TrimSpace(reason),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrdersCommandIsNotConstructed)
}

// OrderIDs returns the deduplicated batch in request order.
func (c RejectOrdersCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

// Reason returns the rejection reason, possibly empty.
func (c RejectOrdersCommand) Reason() string {
	return c.reason
}
