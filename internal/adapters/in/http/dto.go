package http

import (
	"time"

	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type ApproveOrdersRequest struct {
	OrderIDs   []string `json:"orderIds"   validate:"required,min=1,dive,uuid"`
	DirectStep *string  `json:"directStep" validate:"omitempty,uuid"`
}

type RejectOrdersRequest struct {
	OrderIDs []string `json:"orderIds" validate:"required,min=1,dive,uuid"`
	Reason   string   `json:"reason"   validate:"max=1024"`
}

type NewOrderRequest struct {
	Name   string `json:"name"   validate:"required"`
	Type   string `json:"type"   validate:"required,oneof=Standard Priority"`
	StepID string `json:"stepId" validate:"required,uuid"`
}

type NewScreenRequest struct {
	Name string `json:"name" validate:"required"`
}

type NewStepRequest struct {
	Name string `json:"name" validate:"required"`
}

type NewTransitionRequest struct {
	FromStepID    string `json:"fromStepId"    validate:"required,uuid"`
	ToStepID      string `json:"toStepId"      validate:"required,uuid"`
	IsCustomRoute bool   `json:"isCustomRoute"`
}

type Order struct {
	ID              kernel.UUID `json:"id"`
	Name            string      `json:"name"`
	Type            string      `json:"type"`
	StepID          kernel.UUID `json:"stepId"`
	Status          string      `json:"status"`
	RejectionReason string      `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

type HistoryEntry struct {
	ID         kernel.UUID  `json:"id"`
	Action     string       `json:"action"`
	FromStepID *kernel.UUID `json:"fromStepId,omitempty"`
	ToStepID   kernel.UUID  `json:"toStepId"`
	Reason     string       `json:"reason,omitempty"`
	At         time.Time    `json:"at"`
}

type Screen struct {
	ID   kernel.UUID `json:"id"`
	Name string      `json:"name"`
}

type Step struct {
	ID       kernel.UUID `json:"id"`
	ScreenID kernel.UUID `json:"screenId"`
	Name     string      `json:"name"`
}

type Transition struct {
	ID            kernel.UUID `json:"id"`
	ScreenID      kernel.UUID `json:"screenId"`
	FromStepID    kernel.UUID `json:"fromStepId"`
	ToStepID      kernel.UUID `json:"toStepId"`
	IsCustomRoute bool        `json:"isCustomRoute"`
}

type ScreenGraph struct {
	ID          kernel.UUID  `json:"id"`
	Name        string       `json:"name"`
	Steps       []Step       `json:"steps"`
	Transitions []Transition `json:"transitions"`
}

func orderFromDomain(o *order.Order) Order {
	return Order{
		ID:              o.ID(),
		Name:            o.Name(),
		Type:            o.Type().String(),
		StepID:          o.StepID(),
		Status:          o.Status().String(),
		RejectionReason: o.RejectionReason(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

func orderFromQuery(r queries.GetOrdersQueryResponse) Order {
	return Order{
		ID:              r.ID,
		Name:            r.Name,
		Type:            r.Type,
		StepID:          r.StepID,
		Status:          r.Status,
		RejectionReason: r.RejectionReason,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func historyFromQuery(r queries.GetOrderHistoryQueryResponse) HistoryEntry {
	return HistoryEntry{
		ID:         r.ID,
		Action:     r.Action,
		FromStepID: r.FromStepID,
		ToStepID:   r.ToStepID,
		Reason:     r.Reason,
		At:         r.At,
	}
}

func graphFromQuery(r queries.GetScreenGraphQueryResponse) ScreenGraph {
	graph := ScreenGraph{
		ID:          r.ID,
		Name:        r.Name,
		Steps:       make([]Step, 0, len(r.Steps)),
		Transitions: make([]Transition, 0, len(r.Transitions)),
	}
	for _, s := range r.Steps {
		graph.Steps = append(graph.Steps, Step{ID: s.ID, ScreenID: r.ID, Name: s.Name})
	}
	for _, t := range r.Transitions {
		graph.Transitions = append(graph.Transitions, Transition{
			ID:            t.ID,
			ScreenID:      r.ID,
			FromStepID:    t.FromStepID,
			ToStepID:      t.ToStepID,
			IsCustomRoute: t.IsCustomRoute,
		})
	}
	return graph
}
