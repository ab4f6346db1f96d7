package graphcache

import (
	"context"

	"orderflow/internal/core/ports"
)

// UnitOfWorkFactory wraps another factory so every unit of work it creates reads the
// graph through the cache.
type UnitOfWorkFactory struct {
	inner ports.UnitOfWorkFactory
	cache *Cache
}

// UnitOfWorkFactory decorates inner with the cache.
func (c *Cache) UnitOfWorkFactory(inner ports.UnitOfWorkFactory) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{inner: inner, cache: c}
}

// Create returns a cached unit of work.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{
		UnitOfWork: f.inner.Create(),
		cache:      f.cache,
		pending:    &pendingKeys{},
	}
}

// UnitOfWork invalidates the keys of added transitions only after Commit succeeds.
type UnitOfWork struct {
	ports.UnitOfWork
	cache   *Cache
	pending *pendingKeys
}

// GraphRepository returns the cached graph repository bound to the transaction.
func (u *UnitOfWork) GraphRepository() ports.GraphRepository {
	return &Repository{
		GraphRepository: u.UnitOfWork.GraphRepository(),
		cache:           u.cache,
		pending:         u.pending,
	}
}

// Commit commits the wrapped unit of work, then deletes the stale keys.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	if err := u.UnitOfWork.Commit(ctx); err != nil {
		return err
	}
	u.cache.invalidate(ctx, u.pending.drain())
	return nil
}

// Rollback discards the pending invalidations along with the transaction.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	u.pending.drain()
	return u.UnitOfWork.Rollback(ctx)
}
