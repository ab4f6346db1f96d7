package commands

import (
	"errors"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderNameIsRequired = errs.NewValueIsRequiredError("name")
)

// CreateOrderCommand places a new order on its initial step.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "Laptop purchase", order.Standard, draftStepID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	name      string
	orderType order.Type
	stepID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the id, name, type and initial step.
func NewCreateOrderCommand(orderID kernel.UUID, name string, orderType order.Type, stepID kernel.UUID) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setName(name),
		cmd.setType(orderType),
		cmd.setStepID(stepID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order to create.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Name returns the trimmed order name.
func (c CreateOrderCommand) Name() string {
	return c.name
}

// Type returns the order category.
func (c CreateOrderCommand) Type() order.Type {
	return c.orderType
}

// StepID returns the initial step.
func (c CreateOrderCommand) StepID() kernel.UUID {
	return c.stepID
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrOrderNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateOrderCommand) setType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *CreateOrderCommand) setStepID(stepID kernel.UUID) error {
	if err := stepID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("stepId", err)
	}

	c.stepID = stepID
	return nil
}
