package queries

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler reads orders straight from the orders table.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listings.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns the matching orders, oldest first.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			type,
			step_id,
			status,
			rejection_reason,
			created_at,
			updated_at
		FROM orders`
	var args []any
	if stepID := query.StepID(); stepID != nil {
		sql += `
		WHERE step_id = ?`
		args = append(args, stepID.UUID())
	}
	sql += `
		ORDER BY created_at, id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetOrdersQueryResponse
		var id, stepID uuid.UUID

		if err := rows.Scan(
			&id,
			&resp.Name,
			&resp.Type,
			&stepID,
			&resp.Status,
			&resp.RejectionReason,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		); err != nil {
			return nil, err
		}

		var idErr, stepErr error
		resp.ID, idErr = kernel.FromUUID(id)
		resp.StepID, stepErr = kernel.FromUUID(stepID)
		if err := errors.Join(idErr, stepErr); err != nil {
			return nil, err
		}
		resp.CreatedAt = resp.CreatedAt.UTC()
		resp.UpdatedAt = resp.UpdatedAt.UTC()

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
