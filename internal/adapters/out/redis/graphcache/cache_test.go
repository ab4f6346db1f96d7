package graphcache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"orderflow/internal/adapters/out/redis/graphcache"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/workflow"
	"orderflow/internal/core/ports"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGraphRepository struct {
	mock.Mock
}

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
	return args.Get(0).([]*workflow.Step), args.Error(1)
}

func (m *MockGraphRepository) TransitionsOfScreen(ctx context.Context, screenID kernel.UUID) ([]*workflow.Transition, error) {
	args := m.Called(ctx, screenID)
	return args.Get(0).([]*workflow.Transition), args.Error(1)
}

func (m *MockGraphRepository) TransitionsFrom(ctx context.Context, stepID kernel.UUID) ([]*workflow.Transition, error) {
	args := m.Called(ctx, stepID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workflow.Transition), args.Error(1)
}

func (m *MockGraphRepository) TransitionsTo(ctx context.Context, stepID kernel.UUID) ([]*workflow.Transition, error) {
	args := m.Called(ctx, stepID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workflow.Transition), args.Error(1)
}

func (m *MockGraphRepository) AddScreen(ctx context.Context, screen *workflow.Screen) error {
	return m.Called(ctx, screen).Error(0)
}

func (m *MockGraphRepository) AddStep(ctx context.Context, step *workflow.Step) error {
	return m.Called(ctx, step).Error(0)
}

func (m *MockGraphRepository) AddTransition(ctx context.Context, transition *workflow.Transition) error {
	return m.Called(ctx, transition).Error(0)
}

type MockUnitOfWork struct {
	mock.Mock
	graph ports.GraphRepository
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUnitOfWork) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUnitOfWork) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUnitOfWork) GraphRepository() ports.GraphRepository               { return m.graph }
func (m *MockUnitOfWork) OrderRepository() ports.OrderRepository               { return nil }
func (m *MockUnitOfWork) OrderHistoryRepository() ports.OrderHistoryRepository { return nil }

type singleFactory struct {
	uow ports.UnitOfWork
}

func (f singleFactory) Create() ports.UnitOfWork { return f.uow }

func newCache(t *testing.T, opts ...graphcache.Option) (*graphcache.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return graphcache.NewFromClient(client, opts...), mr
}

func newEdge(t *testing.T, from, to kernel.UUID, custom bool) *workflow.Transition {
	t.Helper()
	edge, err := workflow.NewTransition(kernel.NewUUID(), kernel.NewUUID(), from, to, custom)
	require.NoError(t, err)
	return edge
}

func TestRepository_TransitionsFrom_ReadThrough(t *testing.T) {
	ctx := t.Context()
	cache, mr := newCache(t, graphcache.WithPrefix("test:"))
	inner := new(MockGraphRepository)
	repo := cache.Wrap(inner)

	source := kernel.NewUUID()
	edges := []*workflow.Transition{
		newEdge(t, source, kernel.NewUUID(), false),
		newEdge(t, source, kernel.NewUUID(), true),
	}
	inner.On("TransitionsFrom", ctx, source).Return(edges, nil).Once()

	first, err := repo.TransitionsFrom(ctx, source)
	require.NoError(t, err)
	second, err := repo.TransitionsFrom(ctx, source)
	require.NoError(t, err)

	inner.AssertExpectations(t)
	assert.True(t, mr.Exists("test:from:"+source.String()))

	require.Len(t, second, 2)
	for i := range edges {
		assert.Equal(t, first[i].ID(), second[i].ID())
		assert.Equal(t, edges[i].ScreenID(), second[i].ScreenID())
		assert.Equal(t, edges[i].FromStepID(), second[i].FromStepID())
		assert.Equal(t, edges[i].ToStepID(), second[i].ToStepID())
		assert.Equal(t, edges[i].IsCustomRoute(), second[i].IsCustomRoute())
	}
}

func TestRepository_TransitionsTo_CachesEmptyList(t *testing.T) {
	ctx := t.Context()
	cache, _ := newCache(t)
	inner := new(MockGraphRepository)
	repo := cache.Wrap(inner)

	destination := kernel.NewUUID()
	inner.On("TransitionsTo", ctx, destination).Return([]*workflow.Transition{}, nil).Once()

	for range 3 {
		edges, err := repo.TransitionsTo(ctx, destination)
		require.NoError(t, err)
		assert.Empty(t, edges)
	}
	inner.AssertExpectations(t)
}

func TestRepository_EntriesExpire(t *testing.T) {
	ctx := t.Context()
	cache, mr := newCache(t, graphcache.WithTTL(time.Minute))
	inner := new(MockGraphRepository)
	repo := cache.Wrap(inner)

	source := kernel.NewUUID()
	inner.On("TransitionsFrom", ctx, source).Return([]*workflow.Transition{}, nil).Twice()

	_, err := repo.TransitionsFrom(ctx, source)
	require.NoError(t, err)
	mr.FastForward(2 * time.Minute)
	_, err = repo.TransitionsFrom(ctx, source)
	require.NoError(t, err)

	inner.AssertExpectations(t)
}

func TestRepository_InnerErrorIsNotCached(t *testing.T) {
	ctx := t.Context()
	cache, mr := newCache(t)
	inner := new(MockGraphRepository)
	repo := cache.Wrap(inner)

	source := kernel.NewUUID()
	boom := errors.New("connection reset")
	inner.On("TransitionsFrom", ctx, source).Return(nil, boom).Once()

	_, err := repo.TransitionsFrom(ctx, source)

	require.ErrorIs(t, err, boom)
	assert.Empty(t, mr.Keys())
}

func TestRepository_RedisDown_FallsBackToDatabase(t *testing.T) {
	ctx := t.Context()
	cache, mr := newCache(t)
	inner := new(MockGraphRepository)
	repo := cache.Wrap(inner)
	mr.Close()

	source := kernel.NewUUID()
	edges := []*workflow.Transition{newEdge(t, source, kernel.NewUUID(), false)}
	inner.On("TransitionsFrom", ctx, source).Return(edges, nil).Once()

	result, err := repo.TransitionsFrom(ctx, source)

	require.NoError(t, err)
	assert.Equal(t, edges, result)
}

func TestRepository_AddTransitionWithoutUnitOfWork_InvalidatesImmediately(t *testing.T) {
	ctx := t.Context()
	cache, mr := newCache(t, graphcache.WithPrefix("test:"))
	inner := new(MockGraphRepository)
	repo := cache.Wrap(inner)

	source, destination := kernel.NewUUID(), kernel.NewUUID()
	inner.On("TransitionsFrom", ctx, source).Return([]*workflow.Transition{}, nil).Once()
	inner.On("TransitionsTo", ctx, destination).Return([]*workflow.Transition{}, nil).Once()
	_, err := repo.TransitionsFrom(ctx, source)
	require.NoError(t, err)
	_, err = repo.TransitionsTo(ctx, destination)
	require.NoError(t, err)

	edge := newEdge(t, source, destination, false)
	inner.On("AddTransition", ctx, edge).Return(nil).Once()
	require.NoError(t, repo.AddTransition(ctx, edge))

	assert.False(t, mr.Exists("test:from:"+source.String()))
	assert.False(t, mr.Exists("test:to:"+destination.String()))
	inner.AssertExpectations(t)
}

func TestUnitOfWork_InvalidatesOnlyAfterCommit(t *testing.T) {
	ctx := t.Context()
	cache, mr := newCache(t, graphcache.WithPrefix("test:"))
	inner := new(MockGraphRepository)
	innerUoW := &MockUnitOfWork{graph: inner}
	factory := cache.UnitOfWorkFactory(singleFactory{uow: innerUoW})

	source := kernel.NewUUID()
	key := "test:from:" + source.String()
	inner.On("TransitionsFrom", ctx, source).Return([]*workflow.Transition{}, nil).Once()

	uow := factory.Create()
	_, err := uow.GraphRepository().TransitionsFrom(ctx, source)
	require.NoError(t, err)
	require.True(t, mr.Exists(key))

	edge := newEdge(t, source, kernel.NewUUID(), false)
	inner.On("AddTransition", ctx, edge).Return(nil).Once()
	require.NoError(t, uow.GraphRepository().AddTransition(ctx, edge))
	assert.True(t, mr.Exists(key), "key must survive until commit")

	innerUoW.On("Commit", ctx).Return(nil).Once()
	require.NoError(t, uow.Commit(ctx))
	assert.False(t, mr.Exists(key))

	inner.AssertExpectations(t)
	innerUoW.AssertExpectations(t)
}

func TestUnitOfWork_RollbackKeepsCache(t *testing.T) {
	ctx := t.Context()
	cache, mr := newCache(t, graphcache.WithPrefix("test:"))
	inner := new(MockGraphRepository)
	innerUoW := &MockUnitOfWork{graph: inner}
	factory := cache.UnitOfWorkFactory(singleFactory{uow: innerUoW})

	source := kernel.NewUUID()
	key := "test:from:" + source.String()
	inner.On("TransitionsFrom", ctx, source).Return([]*workflow.Transition{}, nil).Once()

	uow := factory.Create()
	_, err := uow.GraphRepository().TransitionsFrom(ctx, source)
	require.NoError(t, err)

	edge := newEdge(t, source, kernel.NewUUID(), false)
	inner.On("AddTransition", ctx, edge).Return(nil).Once()
	require.NoError(t, uow.GraphRepository().AddTransition(ctx, edge))

	innerUoW.On("Rollback", ctx).Return(nil).Once()
	require.NoError(t, uow.Rollback(ctx))

	// A later commit of the same unit of work has nothing left to invalidate.
	innerUoW.On("Commit", ctx).Return(nil).Once()
	require.NoError(t, uow.Commit(ctx))
	assert.True(t, mr.Exists(key))
}

func TestUnitOfWork_FailedCommitKeepsCache(t *testing.T) {
	ctx := t.Context()
	cache, mr := newCache(t, graphcache.WithPrefix("test:"))
	inner := new(MockGraphRepository)
	innerUoW := &MockUnitOfWork{graph: inner}
	factory := cache.UnitOfWorkFactory(singleFactory{uow: innerUoW})

	source := kernel.NewUUID()
	inner.On("TransitionsFrom", ctx, source).Return([]*workflow.Transition{}, nil).Once()

	uow := factory.Create()
	_, err := uow.GraphRepository().TransitionsFrom(ctx, source)
	require.NoError(t, err)

	edge := newEdge(t, source, kernel.NewUUID(), false)
	inner.On("AddTransition", ctx, edge).Return(nil).Once()
	require.NoError(t, uow.GraphRepository().AddTransition(ctx, edge))

	boom := errors.New("serialization failure")
	innerUoW.On("Commit", ctx).Return(boom).Once()

	require.ErrorIs(t, uow.Commit(ctx), boom)
	assert.True(t, mr.Exists("test:from:"+source.String()))
}

func TestRepository_CommitDuringMiss_DoesNotStoreOldList(t *testing.T) {
	ctx := t.Context()
	cache, mr := newCache(t, graphcache.WithPrefix("test:"))
	source := kernel.NewUUID()
	key := "test:from:" + source.String()
	edge := newEdge(t, source, kernel.NewUUID(), false)

	writerGraph := new(MockGraphRepository)
	writerUoW := &MockUnitOfWork{graph: writerGraph}
	writer := cache.UnitOfWorkFactory(singleFactory{uow: writerUoW}).Create()
	writerGraph.On("AddTransition", ctx, edge).Return(nil).Once()
	writerUoW.On("Commit", ctx).Return(nil).Once()

	// The default edge is committed while the reader is still loading the old list.
	inner := new(MockGraphRepository)
	inner.On("TransitionsFrom", ctx, source).
		Run(func(mock.Arguments) {
			require.NoError(t, writer.GraphRepository().AddTransition(ctx, edge))
			require.NoError(t, writer.Commit(ctx))
		}).
		Return([]*workflow.Transition{}, nil).Once()

	old, err := cache.Wrap(inner).TransitionsFrom(ctx, source)
	require.NoError(t, err)
	assert.Empty(t, old)
	assert.False(t, mr.Exists(key))

	inner.On("TransitionsFrom", ctx, source).Return([]*workflow.Transition{edge}, nil).Once()

	current, err := cache.Wrap(inner).TransitionsFrom(ctx, source)
	require.NoError(t, err)
	require.Len(t, current, 1)
	assert.Equal(t, edge.ID(), current[0].ID())
	assert.True(t, mr.Exists(key))

	cached, err := cache.Wrap(inner).TransitionsFrom(ctx, source)
	require.NoError(t, err)
	require.Len(t, cached, 1)

	inner.AssertExpectations(t)
	writerGraph.AssertExpectations(t)
	writerUoW.AssertExpectations(t)
}

func TestUnitOfWork_ReadAfterOwnWrite_BypassesCache(t *testing.T) {
	ctx := t.Context()
	cache, mr := newCache(t, graphcache.WithPrefix("test:"))
	inner := new(MockGraphRepository)
	innerUoW := &MockUnitOfWork{graph: inner}
	uow := cache.UnitOfWorkFactory(singleFactory{uow: innerUoW}).Create()

	source := kernel.NewUUID()
	key := "test:from:" + source.String()
	edge := newEdge(t, source, kernel.NewUUID(), false)
	inner.On("AddTransition", ctx, edge).Return(nil).Once()
	inner.On("TransitionsFrom", ctx, source).Return([]*workflow.Transition{edge}, nil).Twice()

	require.NoError(t, uow.GraphRepository().AddTransition(ctx, edge))
	for range 2 {
		edges, err := uow.GraphRepository().TransitionsFrom(ctx, source)
		require.NoError(t, err)
		require.Len(t, edges, 1)
	}
	assert.False(t, mr.Exists(key))

	innerUoW.On("Rollback", ctx).Return(nil).Once()
	require.NoError(t, uow.Rollback(ctx))
	assert.False(t, mr.Exists(key))

	inner.AssertExpectations(t)
}

func TestCache_Ping(t *testing.T) {
	cache, mr := newCache(t)
	require.NoError(t, cache.Ping(t.Context()))

	mr.Close()
	assert.Error(t, cache.Ping(t.Context()))
}
