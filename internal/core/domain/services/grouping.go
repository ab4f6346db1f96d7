package services

import (
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// StepGroup is the set of orders of a batch that share a current step.
type StepGroup struct {
	StepID kernel.UUID
	Orders []*order.Order
}

// OrderIDs returns the ids of the group's orders in group order.
func (g StepGroup) OrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(g.Orders))
	for _, o := range g.Orders {
		ids = append(ids, o.ID())
	}
	return ids
}

// GroupOrdersByStep partitions orders by current step. Groups appear in the order their step
// is first seen, and orders keep their input order inside a group.
func GroupOrdersByStep(orders []*order.Order) []StepGroup {
	index := make(map[kernel.UUID]int, len(orders))
	groups := make([]StepGroup, 0, len(orders))

	for _, o := range orders {
		i, ok := index[o.StepID()]
		if !ok {
			i = len(groups)
			index[o.StepID()] = i
			groups = append(groups, StepGroup{StepID: o.StepID()})
		}
		groups[i].Orders = append(groups[i].Orders, o)
	}

	return groups
}
