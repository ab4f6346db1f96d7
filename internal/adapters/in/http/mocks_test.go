package http_test

import (
	"context"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/workflow"

	"github.com/stretchr/testify/mock"
)

type MockApprover struct{ mock.Mock }

func (m *MockApprover) Handle(ctx context.Context, cmd commands.ApproveOrdersCommand) ([]*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockRejecter struct{ mock.Mock }

func (m *MockRejecter) Handle(ctx context.Context, cmd commands.RejectOrdersCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

type MockOrderCreator struct{ mock.Mock }

func (m *MockOrderCreator) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockScreenCreator struct{ mock.Mock }

func (m *MockScreenCreator) Handle(ctx context.Context, cmd commands.CreateScreenCommand) (*workflow.Screen, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workflow.Screen), args.Error(1)
}

type MockStepCreator struct{ mock.Mock }

func (m *MockStepCreator) Handle(ctx context.Context, cmd commands.CreateStepCommand) (*workflow.Step, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workflow.Step), args.Error(1)
}

type MockTransitionCreator struct{ mock.Mock }

func (m *MockTransitionCreator) Handle(ctx context.Context, cmd commands.CreateTransitionCommand) (*workflow.Transition, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workflow.Transition), args.Error(1)
}

type MockOrdersLister struct{ mock.Mock }

func (m *MockOrdersLister) Handle(ctx context.Context, query queries.GetOrdersQuery) ([]queries.GetOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetOrdersQueryResponse), args.Error(1)
}

type MockHistoryReader struct{ mock.Mock }

func (m *MockHistoryReader) Handle(
	ctx context.Context, query queries.GetOrderHistoryQuery,
) ([]queries.GetOrderHistoryQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetOrderHistoryQueryResponse), args.Error(1)
}

type MockGraphReader struct{ mock.Mock }

func (m *MockGraphReader) Handle(
	ctx context.Context, query queries.GetScreenGraphQuery,
) (queries.GetScreenGraphQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetScreenGraphQueryResponse), args.Error(1)
}
