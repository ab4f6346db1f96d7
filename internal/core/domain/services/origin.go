package services

import (
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
)

// OriginKey selects the id a direct step request is checked against: the value must be the
// source of a transition landing on the requested step.
type OriginKey func(o *order.Order) kernel.UUID

// CurrentStepOrigin checks a direct step against the order's current step.
func CurrentStepOrigin(o *order.Order) kernel.UUID {
	return o.StepID()
}

// OrderIDOrigin checks a direct step against the order id itself. Such a check only passes
// when an order id coincides with a step id, which keeps direct steps practically inert.
// It exists for deployments that depend on that legacy behavior.
func OrderIDOrigin(o *order.Order) kernel.UUID {
	return o.ID()
}

// Origin key names accepted by ParseOriginKey.
const (
	OriginKeyStep    = "step"
	OriginKeyOrderID = "order_id"
)

// ParseOriginKey maps a configuration value to an OriginKey. The empty string selects
// CurrentStepOrigin.
func ParseOriginKey(name string) (OriginKey, error) {
	switch name {
	case "", OriginKeyStep:
		return CurrentStepOrigin, nil
	case OriginKeyOrderID:
		return OrderIDOrigin, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("origin key",
			fmt.Errorf("%q is not one of %q, %q", name, OriginKeyStep, OriginKeyOrderID))
	}
}
