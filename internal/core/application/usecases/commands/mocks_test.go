package commands_test

import (
	"context"
	"time"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/workflow"
	"orderflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) BulkSetStep(ctx context.Context, ids []kernel.UUID, stepID kernel.UUID, at time.Time) error {
	args := m.Called(ctx, ids, stepID, at)
	return args.Error(0)
}

func (m *MockOrderRepository) BulkReject(ctx context.Context, ids []kernel.UUID, reason string, at time.Time) error {
	args := m.Called(ctx, ids, reason, at)
	return args.Error(0)
}

type MockGraphRepository struct{ mock.Mock }

func (m *MockGraphRepository) GetScreen(ctx context.Context, id kernel.UUID) (*workflow.Screen, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workflow.Screen), args.Error(1)
}

func (m *MockGraphRepository) GetStep(ctx context.Context, id kernel.UUID) (*workflow.Step, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workflow.Step), args.Error(1)
}

func (m *MockGraphRepository) StepsOfScreen(ctx context.Context, screenID kernel.UUID) ([]*workflow.Step, error) {
	args := m.Called(ctx, screenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workflow.Step), args.Error(1)
}

func (m *MockGraphRepository) TransitionsOfScreen(ctx context.Context, screenID kernel.UUID) ([]*workflow.Transition, error) {
	return m.transitions(m.Called(ctx, screenID))
}

func (m *MockGraphRepository) TransitionsFrom(ctx context.Context, stepID kernel.UUID) ([]*workflow.Transition, error) {
	return m.transitions(m.Called(ctx, stepID))
}

func (m *MockGraphRepository) TransitionsTo(ctx context.Context, stepID kernel.UUID) ([]*workflow.Transition, error) {
	return m.transitions(m.Called(ctx, stepID))
}

func (m *MockGraphRepository) transitions(args mock.Arguments) ([]*workflow.Transition, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workflow.Transition), args.Error(1)
}

func (m *MockGraphRepository) AddScreen(ctx context.Context, s *workflow.Screen) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockGraphRepository) AddStep(ctx context.Context, s *workflow.Step) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockGraphRepository) AddTransition(ctx context.Context, t *workflow.Transition) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Append(ctx context.Context, entries ...*order.HistoryEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) GraphRepository() ports.GraphRepository {
	args := m.Called()
	return args.Get(0).(ports.GraphRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) OrderHistoryRepository() ports.OrderHistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderHistoryRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockGraphUoWFactory struct{ mock.Mock }

func (m *MockGraphUoWFactory) Create() commands.GraphUoW {
	args := m.Called()
	return args.Get(0).(commands.GraphUoW)
}
