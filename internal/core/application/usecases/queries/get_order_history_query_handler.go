package queries

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle returns the entries in the order they happened. An unknown order yields
// errs.ObjectNotFoundError rather than an empty trail.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	orderID := query.OrderID()

	var exists bool
	if err := db.Raw(`SELECT EXISTS (SELECT 1 FROM orders WHERE id = ?)`, orderID.UUID()).
		Scan(&exists).Error; err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("order", orderID.String())
	}

	rows, err := db.Raw(`
		SELECT
			id,
			action,
			from_step_id,
			to_step_id,
			reason,
			at
		FROM order_history
		WHERE order_id = ?
		ORDER BY at, id
	`, orderID.UUID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]GetOrderHistoryQueryResponse, 0)
	for rows.Next() {
		var resp GetOrderHistoryQueryResponse
		var id, to uuid.UUID
		var from uuid.NullUUID

		if err := rows.Scan(&id, &resp.Action, &from, &to, &resp.Reason, &resp.At); err != nil {
			return nil, err
		}

		var idErr, toErr error
		resp.ID, idErr = kernel.FromUUID(id)
		resp.ToStepID, toErr = kernel.FromUUID(to)
		if err := errors.Join(idErr, toErr); err != nil {
			return nil, err
		}
		if from.Valid {
			fromStepID, err := kernel.FromUUID(from.UUID)
			if err != nil {
				return nil, err
			}
			resp.FromStepID = &fromStepID
		}
		resp.At = resp.At.UTC()

		entries = append(entries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
