package commands_test

import (
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/workflow"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type graphFixture struct {
	screen      *workflow.Screen
	draft       *workflow.Step
	review      *workflow.Step
	foreignStep *workflow.Step
}

func newGraphFixture(t *testing.T) graphFixture {
	t.Helper()
	screen, err := workflow.NewScreen(kernel.NewUUID(), "Purchases")
	require.NoError(t, err)
	draft, err := workflow.NewStep(kernel.NewUUID(), screen.ID(), "Draft")
	require.NoError(t, err)
	review, err := workflow.NewStep(kernel.NewUUID(), screen.ID(), "Review")
	require.NoError(t, err)
	foreign, err := workflow.NewStep(kernel.NewUUID(), kernel.NewUUID(), "Elsewhere")
	require.NoError(t, err)
	return graphFixture{screen: screen, draft: draft, review: review, foreignStep: foreign}
}

func TestCreateScreenCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateScreenCommand(kernel.NewUUID(), "Purchases")

	graph := new(MockGraphRepository)
	uow := new(MockUoW)
	factory := new(MockGraphUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("GraphRepository").Return(graph).Once(),
		graph.On("AddScreen", ctx, mock.AnythingOfType("*workflow.Screen")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	screen, err := commands.NewCreateScreenCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Purchases", screen.Name())
	graph.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateStepCommandHandler_Handle(t *testing.T) {
	f := newGraphFixture(t)

	t.Run("should add step to existing screen", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewCreateStepCommand(kernel.NewUUID(), f.screen.ID(), "Approve")

		graph := new(MockGraphRepository)
		uow := new(MockUoW)
		factory := new(MockGraphUoWFactory)
		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("GraphRepository").Return(graph).Once(),
			graph.On("GetScreen", ctx, f.screen.ID()).Return(f.screen, nil).Once(),
			graph.On("AddStep", ctx, mock.AnythingOfType("*workflow.Step")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		step, err := commands.NewCreateStepCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, step.BelongsTo(f.screen.ID()))
		graph.AssertExpectations(t)
	})

	t.Run("should fail for unknown screen", func(t *testing.T) {
		ctx := t.Context()
		screenID := kernel.NewUUID()
		cmd, _ := commands.NewCreateStepCommand(kernel.NewUUID(), screenID, "Approve")

		graph := new(MockGraphRepository)
		uow := new(MockUoW)
		factory := new(MockGraphUoWFactory)
		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("GraphRepository").Return(graph).Once(),
			graph.On("GetScreen", ctx, screenID).Return(nil, errs.NewObjectNotFoundError("screenId", screenID)).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		_, err := commands.NewCreateStepCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		graph.AssertNotCalled(t, "AddStep", mock.Anything, mock.Anything)
	})
}

func TestCreateTransitionCommandHandler_Handle(t *testing.T) {
	f := newGraphFixture(t)

	expectLookups := func(ctx any, graph *MockGraphRepository, uow *MockUoW, factory *MockGraphUoWFactory,
		to *workflow.Step, outgoing []*workflow.Transition,
	) []*mock.Call {
		return []*mock.Call{
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("GraphRepository").Return(graph).Once(),
			graph.On("GetStep", ctx, f.draft.ID()).Return(f.draft, nil).Once(),
			graph.On("GetStep", ctx, to.ID()).Return(to, nil).Once(),
			graph.On("TransitionsFrom", ctx, f.draft.ID()).Return(outgoing, nil).Once(),
		}
	}

	t.Run("should add first default transition", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewCreateTransitionCommand(kernel.NewUUID(), f.screen.ID(), f.draft.ID(), f.review.ID(), false)

		graph, uow, factory := new(MockGraphRepository), new(MockUoW), new(MockGraphUoWFactory)
		calls := expectLookups(ctx, graph, uow, factory, f.review, []*workflow.Transition{})
		calls = append(calls,
			graph.On("AddTransition", ctx, cmd.Transition()).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		mock.InOrder(calls...)

		created, err := commands.NewCreateTransitionCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, created.IsDefault())
		graph.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should refuse second default transition", func(t *testing.T) {
		ctx := t.Context()
		existing, _ := workflow.NewTransition(kernel.NewUUID(), f.screen.ID(), f.draft.ID(), f.review.ID(), false)
		cmd, _ := commands.NewCreateTransitionCommand(kernel.NewUUID(), f.screen.ID(), f.draft.ID(), f.review.ID(), false)

		graph, uow, factory := new(MockGraphRepository), new(MockUoW), new(MockGraphUoWFactory)
		calls := expectLookups(ctx, graph, uow, factory, f.review, []*workflow.Transition{existing})
		calls = append(calls, uow.On("Rollback", ctx).Return(nil).Once())
		mock.InOrder(calls...)

		_, err := commands.NewCreateTransitionCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, workflow.ErrDuplicateDefaultTransition)
		graph.AssertNotCalled(t, "AddTransition", mock.Anything, mock.Anything)
	})

	t.Run("should refuse cross screen transition", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewCreateTransitionCommand(kernel.NewUUID(), f.screen.ID(), f.draft.ID(), f.foreignStep.ID(), true)

		graph, uow, factory := new(MockGraphRepository), new(MockUoW), new(MockGraphUoWFactory)
		calls := expectLookups(ctx, graph, uow, factory, f.foreignStep, []*workflow.Transition{})
		calls = append(calls, uow.On("Rollback", ctx).Return(nil).Once())
		mock.InOrder(calls...)

		_, err := commands.NewCreateTransitionCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, workflow.ErrCrossScreenTransition)
		graph.AssertNotCalled(t, "AddTransition", mock.Anything, mock.Anything)
	})
}
