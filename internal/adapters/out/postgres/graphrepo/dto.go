// Package graphrepo persists the workflow graph: screens, their steps and the
// transitions between steps.
package graphrepo

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/workflow"

	"github.com/google/uuid"
)

// SingleDefaultIndex is the partial unique index that allows one default transition
// per source step.
const SingleDefaultIndex = "ux_transitions_single_default"

// ScreenDTO is the row layout of the screens table.
type ScreenDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
}

// TableName overrides GORM's naming convention.
func (ScreenDTO) TableName() string {
	return "screens"
}

// StepDTO is the row layout of the steps table.
type StepDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	ScreenID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name     string    `gorm:"type:varchar(255);not null"`
}

// TableName overrides GORM's naming convention.
func (StepDTO) TableName() string {
	return "steps"
}

// TransitionDTO is the row layout of the transitions table. from_step_id carries both
// a plain index for outgoing lookups and the single-default partial unique index.
type TransitionDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ScreenID      uuid.UUID `gorm:"type:uuid;not null;index"`
	FromStepID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:ux_transitions_single_default,where:is_custom_route = false"`
	ToStepID      uuid.UUID `gorm:"type:uuid;not null;index"`
	IsCustomRoute bool      `gorm:"not null;default:false"`
}

// TableName overrides GORM's naming convention.
func (TransitionDTO) TableName() string {
	return "transitions"
}

func screenFromDomain(s *workflow.Screen) ScreenDTO {
	return ScreenDTO{ID: s.ID().UUID(), Name: s.Name()}
}

func screenToDomain(dto ScreenDTO) (*workflow.Screen, error) {
	id, err := kernel.FromUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	return workflow.NewScreen(id, dto.Name)
}

func stepFromDomain(s *workflow.Step) StepDTO {
	return StepDTO{ID: s.ID().UUID(), ScreenID: s.ScreenID().UUID(), Name: s.Name()}
}

func stepToDomain(dto StepDTO) (*workflow.Step, error) {
	id, idErr := kernel.FromUUID(dto.ID)
	screenID, screenErr := kernel.FromUUID(dto.ScreenID)
	if err := errors.Join(idErr, screenErr); err != nil {
		return nil, err
	}
	return workflow.NewStep(id, screenID, dto.Name)
}

func transitionFromDomain(t *workflow.Transition) TransitionDTO {
	return TransitionDTO{
		ID:            t.ID().UUID(),
		ScreenID:      t.ScreenID().UUID(),
		FromStepID:    t.FromStepID().UUID(),
		ToStepID:      t.ToStepID().UUID(),
		IsCustomRoute: t.IsCustomRoute(),
	}
}

func transitionToDomain(dto TransitionDTO) (*workflow.Transition, error) {
	id, idErr := kernel.FromUUID(dto.ID)
	screenID, screenErr := kernel.FromUUID(dto.ScreenID)
	from, fromErr := kernel.FromUUID(dto.FromStepID)
	to, toErr := kernel.FromUUID(dto.ToStepID)
	if err := errors.Join(idErr, screenErr, fromErr, toErr); err != nil {
		return nil, err
	}
	return workflow.NewTransition(id, screenID, from, to, dto.IsCustomRoute)
}
