package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an order by id.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.UUID()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves the orders with the given ids, locking their rows FOR UPDATE.
// Rows are locked in id order so two overlapping batches cannot deadlock.
func (r *GormOrderRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	if len(ids) == 0 {
		return []*order.Order{}, nil
	}

	raw, err := rawIDs(ids)
	if err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id IN ?", raw).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// BulkSetStep moves every order in ids to stepID with a single UPDATE.
func (r *GormOrderRepository) BulkSetStep(ctx context.Context, ids []kernel.UUID, stepID kernel.UUID, at time.Time) error {
	if err := stepID.Validate(); err != nil {
		return err
	}

	return r.bulkUpdate(ctx, ids, map[string]any{
		"step_id":    stepID.UUID(),
		"updated_at": at.UTC(),
	})
}

// BulkReject marks every order in ids as Rejected with reason using a single UPDATE.
func (r *GormOrderRepository) BulkReject(ctx context.Context, ids []kernel.UUID, reason string, at time.Time) error {
	return r.bulkUpdate(ctx, ids, map[string]any{
		"status":           order.Rejected.String(),
		"rejection_reason": reason,
		"updated_at":       at.UTC(),
	})
}

func (r *GormOrderRepository) bulkUpdate(ctx context.Context, ids []kernel.UUID, columns map[string]any) error {
	if len(ids) == 0 {
		return nil
	}

	raw, err := rawIDs(ids)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id IN ?", raw).Updates(columns)
	if result.Error != nil {
		return result.Error
	}

	if missing := int64(len(raw)) - result.RowsAffected; missing > 0 {
		return errs.NewObjectNotFoundErrorWithCause(
			"orderIds",
			fmt.Sprintf("%d of %d", missing, len(raw)),
			gorm.ErrRecordNotFound,
		)
	}

	return nil
}

// rawIDs validates ids and drops duplicates so RowsAffected can be compared with the
// request size.
func rawIDs(ids []kernel.UUID) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[id.UUID()]; ok {
			continue
		}
		seen[id.UUID()] = struct{}{}
		raw = append(raw, id.UUID())
	}
	return raw, nil
}
