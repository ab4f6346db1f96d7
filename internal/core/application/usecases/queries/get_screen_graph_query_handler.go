package queries

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetScreenGraphQueryHandler reads a screen graph with three statements.
type GetScreenGraphQueryHandler struct {
	db *gorm.DB
}

func NewGetScreenGraphQueryHandler(db *gorm.DB) GetScreenGraphQueryHandler {
	return GetScreenGraphQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when the screen does not exist.
func (h GetScreenGraphQueryHandler) Handle(ctx context.Context, query GetScreenGraphQuery) (GetScreenGraphQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetScreenGraphQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	screenID := query.ScreenID()

	resp := GetScreenGraphQueryResponse{
		ID:          screenID,
		Steps:       make([]StepView, 0),
		Transitions: make([]TransitionView, 0),
	}

	var names []string
	if err := db.Raw(`SELECT name FROM screens WHERE id = ?`, screenID.UUID()).Scan(&names).Error; err != nil {
		return GetScreenGraphQueryResponse{}, err
	}
	if len(names) == 0 {
		return GetScreenGraphQueryResponse{}, errs.NewObjectNotFoundError("screen", screenID.String())
	}
	resp.Name = names[0]

	steps, err := db.Raw(`
		SELECT id, name
		FROM steps
		WHERE screen_id = ?
		ORDER BY name, id
	`, screenID.UUID()).Rows()
	if err != nil {
		return GetScreenGraphQueryResponse{}, err
	}
	defer steps.Close()

	for steps.Next() {
		var view StepView
		var id uuid.UUID
		if err := steps.Scan(&id, &view.Name); err != nil {
			return GetScreenGraphQueryResponse{}, err
		}
		if view.ID, err = kernel.FromUUID(id); err != nil {
			return GetScreenGraphQueryResponse{}, err
		}
		resp.Steps = append(resp.Steps, view)
	}
	if err = steps.Err(); err != nil {
		return GetScreenGraphQueryResponse{}, err
	}

	transitions, err := db.Raw(`
		SELECT
			t.id,
			t.from_step_id,
			t.to_step_id,
			t.is_custom_route
		FROM transitions t
		LEFT JOIN steps f ON f.id = t.from_step_id
		LEFT JOIN steps d ON d.id = t.to_step_id
		WHERE t.screen_id = ?
		ORDER BY f.name, d.name, t.id
	`, screenID.UUID()).Rows()
	if err != nil {
		return GetScreenGraphQueryResponse{}, err
	}
	defer transitions.Close()

	for transitions.Next() {
		var view TransitionView
		var id, from, to uuid.UUID
		if err := transitions.Scan(&id, &from, &to, &view.IsCustomRoute); err != nil {
			return GetScreenGraphQueryResponse{}, err
		}

		var idErr, fromErr, toErr error
		view.ID, idErr = kernel.FromUUID(id)
		view.FromStepID, fromErr = kernel.FromUUID(from)
		view.ToStepID, toErr = kernel.FromUUID(to)
		if err := errors.Join(idErr, fromErr, toErr); err != nil {
			return GetScreenGraphQueryResponse{}, err
		}
		resp.Transitions = append(resp.Transitions, view)
	}
	if err = transitions.Err(); err != nil {
		return GetScreenGraphQueryResponse{}, err
	}

	return resp, nil
}
