package graphrepo

import (
	"context"
	"errors"
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/workflow"
	"orderflow/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// GormGraphRepository implements ports.GraphRepository using GORM.
type GormGraphRepository struct {
	db *gorm.DB
}

// NewGormGraphRepository creates a new GORM graph repository.
func NewGormGraphRepository(db *gorm.DB) *GormGraphRepository {
	return &GormGraphRepository{db: db}
}

// AddScreen saves a new screen.
func (r *GormGraphRepository) AddScreen(ctx context.Context, screen *workflow.Screen) error {
	if err := screen.Validate(); err != nil {
		return err
	}

	dto := screenFromDomain(screen)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AddStep saves a new step.
func (r *GormGraphRepository) AddStep(ctx context.Context, step *workflow.Step) error {
	if err := step.Validate(); err != nil {
		return err
	}

	dto := stepFromDomain(step)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AddTransition saves a new transition. A concurrent writer that already stored a
// default transition for the same source step makes the insert fail with
// workflow.ErrDuplicateDefaultTransition.
func (r *GormGraphRepository) AddTransition(ctx context.Context, transition *workflow.Transition) error {
	if err := transition.Validate(); err != nil {
		return err
	}

	dto := transitionFromDomain(transition)
	err := r.db.WithContext(ctx).Create(&dto).Error

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == SingleDefaultIndex {
		return fmt.Errorf("%w: step %s", workflow.ErrDuplicateDefaultTransition, transition.FromStepID())
	}
	return err
}

// GetScreen retrieves a screen by id.
func (r *GormGraphRepository) GetScreen(ctx context.Context, id kernel.UUID) (*workflow.Screen, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ScreenDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.UUID()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("screen", id.String())
		}
		return nil, err
	}

	return screenToDomain(dto)
}

// GetStep retrieves a step by id.
func (r *GormGraphRepository) GetStep(ctx context.Context, id kernel.UUID) (*workflow.Step, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StepDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.UUID()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("step", id.String())
		}
		return nil, err
	}

	return stepToDomain(dto)
}

// StepsOfScreen lists the steps of a screen ordered by name.
func (r *GormGraphRepository) StepsOfScreen(ctx context.Context, screenID kernel.UUID) ([]*workflow.Step, error) {
	if err := screenID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StepDTO
	if err := r.db.WithContext(ctx).
		Where("screen_id = ?", screenID.UUID()).
		Order("name, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	steps := make([]*workflow.Step, 0, len(dtos))
	for _, dto := range dtos {
		step, err := stepToDomain(dto)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// TransitionsOfScreen lists the transitions of a screen.
func (r *GormGraphRepository) TransitionsOfScreen(ctx context.Context, screenID kernel.UUID) ([]*workflow.Transition, error) {
	return r.findTransitions(ctx, "screen_id", screenID)
}

// TransitionsFrom lists the transitions leaving stepID.
func (r *GormGraphRepository) TransitionsFrom(ctx context.Context, stepID kernel.UUID) ([]*workflow.Transition, error) {
	return r.findTransitions(ctx, "from_step_id", stepID)
}

// TransitionsTo lists the transitions entering stepID.
func (r *GormGraphRepository) TransitionsTo(ctx context.Context, stepID kernel.UUID) ([]*workflow.Transition, error) {
	return r.findTransitions(ctx, "to_step_id", stepID)
}

func (r *GormGraphRepository) findTransitions(ctx context.Context, column string, id kernel.UUID) ([]*workflow.Transition, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dtos []TransitionDTO
	if err := r.db.WithContext(ctx).
		Where(column+" = ?", id.UUID()).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	transitions := make([]*workflow.Transition, 0, len(dtos))
	for _, dto := range dtos {
		t, err := transitionToDomain(dto)
		if err != nil {
			return nil, err
		}
		transitions = append(transitions, t)
	}
	return transitions, nil
}
