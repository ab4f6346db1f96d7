// Package orderrepo persists order aggregates in the orders table and converts between
// the domain model and its row representation.
package orderrepo

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the row layout of the orders table. step_id and status are indexed for
// the per-step listing and the integrity scan.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Type            string    `gorm:"type:varchar(32);not null"`
	StepID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Status          string    `gorm:"type:varchar(32);not null;index"`
	RejectionReason string    `gorm:"type:text;not null;default:''"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName overrides GORM's naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:              o.ID().UUID(),
		Name:            o.Name(),
		Type:            o.Type().String(),
		StepID:          o.StepID().UUID(),
		Status:          o.Status().String(),
		RejectionReason: o.RejectionReason(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, idErr := kernel.FromUUID(dto.ID)
	stepID, stepErr := kernel.FromUUID(dto.StepID)
	orderType, typeErr := order.ParseType(dto.Type)
	status, statusErr := order.ParseStatus(dto.Status)
	if err := errors.Join(idErr, stepErr, typeErr, statusErr); err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.Name,
		orderType,
		stepID,
		status,
		dto.RejectionReason,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
