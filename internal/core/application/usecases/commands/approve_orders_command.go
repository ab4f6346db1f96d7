package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrApproveOrdersCommandIsNotConstructed = errors.New(
	"ApproveOrdersCommand must be created via NewApproveOrdersCommand constructor",
)

// ApproveOrdersCommand advances a batch of orders to their next step.
// Without a direct step every order follows the default transition of its current step.
// With a direct step every order goes there, provided a transition leads to it.
//
// Example:
//
//	cmd, err := NewApproveOrdersCommand([]kernel.UUID{o1, o2}, nil)
//	if err != nil {
//	    return err
//	}
//	moved, err := handler.Handle(ctx, cmd)
type ApproveOrdersCommand struct {
	orderIDs   []kernel.UUID
	directStep *kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveOrdersCommand validates the batch. orderIDs must be non-empty and valid;
// duplicates are dropped. directStep is optional.
func NewApproveOrdersCommand(orderIDs []kernel.UUID, directStep *kernel.UUID) (ApproveOrdersCommand, error) {
	cmd := ApproveOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderIDs(orderIDs),
		cmd.setDirectStep(directStep),
	); err != nil {
		return ApproveOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveOrdersCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrdersCommandIsNotConstructed)
}

// OrderIDs returns the deduplicated batch in request order.
func (c ApproveOrdersCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

// DirectStep returns the requested destination, or nil for default routing.
func (c ApproveOrdersCommand) DirectStep() *kernel.UUID {
	return c.directStep
}

func (c *ApproveOrdersCommand) setOrderIDs(ids []kernel.UUID) error {
	unique, err := normalizeOrderIDs(ids)
	if err != nil {
		return err
	}
	c.orderIDs = unique
	return nil
}

func (c *ApproveOrdersCommand) setDirectStep(stepID *kernel.UUID) error {
	if stepID == nil {
		return nil
	}
	if err := stepID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("directStep", err)
	}
	step := *stepID
	c.directStep = &step
	return nil
}
