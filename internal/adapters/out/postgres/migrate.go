package postgres

import (
	"context"

	"orderflow/internal/adapters/out/postgres/graphrepo"
	"orderflow/internal/adapters/out/postgres/historyrepo"
	"orderflow/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table and index the repositories and queries use.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(
		&graphrepo.ScreenDTO{},
		&graphrepo.StepDTO{},
		&graphrepo.TransitionDTO{},
		&orderrepo.OrderDTO{},
		&historyrepo.HistoryEntryDTO{},
	)
}
