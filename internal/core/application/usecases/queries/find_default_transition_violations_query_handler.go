package queries

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FindDefaultTransitionViolationsQueryHandler struct {
	db *gorm.DB
}

func NewFindDefaultTransitionViolationsQueryHandler(db *gorm.DB) FindDefaultTransitionViolationsQueryHandler {
	return FindDefaultTransitionViolationsQueryHandler{db: db}
}

// Handle scans the whole graph in one statement. Results are ordered by screen, then step name.
func (h FindDefaultTransitionViolationsQueryHandler) Handle(
	ctx context.Context,
	query FindDefaultTransitionViolationsQuery,
) ([]FindDefaultTransitionViolationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.screen_id,
			s.id,
			s.name,
			COUNT(DISTINCT t.id) AS default_transitions,
			COUNT(DISTINCT o.id) AS active_orders
		FROM steps s
		JOIN orders o ON o.step_id = s.id AND o.status = ?
		LEFT JOIN transitions t ON t.from_step_id = s.id AND t.is_custom_route = false
		GROUP BY s.screen_id, s.id, s.name
		HAVING COUNT(DISTINCT t.id) <> 1
		ORDER BY s.screen_id, s.name, s.id
	`, order.Active.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	violations := make([]FindDefaultTransitionViolationsQueryResponse, 0)
	for rows.Next() {
		var resp FindDefaultTransitionViolationsQueryResponse
		var screenID, stepID uuid.UUID

		if err := rows.Scan(
			&screenID,
			&stepID,
			&resp.StepName,
			&resp.DefaultTransitions,
			&resp.ActiveOrders,
		); err != nil {
			return nil, err
		}

		var screenErr, stepErr error
		resp.ScreenID, screenErr = kernel.FromUUID(screenID)
		resp.StepID, stepErr = kernel.FromUUID(stepID)
		if err := errors.Join(screenErr, stepErr); err != nil {
			return nil, err
		}

		violations = append(violations, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return violations, nil
}
