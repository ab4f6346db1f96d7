// Package historyrepo appends order movements to the order_history audit table.
package historyrepo

import (
	"time"

	"orderflow/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// HistoryEntryDTO is the row layout of the order_history table.
type HistoryEntryDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID  `gorm:"type:uuid;not null;index:ix_order_history_order_at,priority:1"`
	Action     string     `gorm:"type:varchar(32);not null"`
	FromStepID *uuid.UUID `gorm:"type:uuid"`
	ToStepID   uuid.UUID  `gorm:"type:uuid;not null"`
	Reason     string     `gorm:"type:text;not null;default:''"`
	At         time.Time  `gorm:"not null;index:ix_order_history_order_at,priority:2"`
}

// TableName overrides GORM's naming convention.
func (HistoryEntryDTO) TableName() string {
	return "order_history"
}

func fromDomain(entry *order.HistoryEntry) HistoryEntryDTO {
	dto := HistoryEntryDTO{
		ID:       entry.ID().UUID(),
		OrderID:  entry.OrderID().UUID(),
		Action:   string(entry.Action()),
		ToStepID: entry.ToStepID().UUID(),
		Reason:   entry.Reason(),
		At:       entry.At(),
	}
	if from := entry.FromStepID(); from != nil {
		raw := from.UUID()
		dto.FromStepID = &raw
	}
	return dto
}
