package graphcache

import (
	"context"
	"slices"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/workflow"
	"orderflow/internal/core/ports"
)

// Repository is a ports.GraphRepository whose transition lookups are cached.
type Repository struct {
	ports.GraphRepository
	cache   *Cache
	pending *pendingKeys
}

// Wrap decorates inner. Without a unit of work, AddTransition invalidates right away.
func (c *Cache) Wrap(inner ports.GraphRepository) *Repository {
	return &Repository{GraphRepository: inner, cache: c}
}

// TransitionsFrom serves the outgoing transitions of stepID from Redis when present.
func (r *Repository) TransitionsFrom(ctx context.Context, stepID kernel.UUID) ([]*workflow.Transition, error) {
	if err := stepID.Validate(); err != nil {
		return nil, err
	}
	return r.readThrough(ctx, r.cache.fromKey(stepID), func(ctx context.Context) ([]*workflow.Transition, error) {
		return r.GraphRepository.TransitionsFrom(ctx, stepID)
	})
}

// TransitionsTo serves the incoming transitions of stepID from Redis when present.
func (r *Repository) TransitionsTo(ctx context.Context, stepID kernel.UUID) ([]*workflow.Transition, error) {
	if err := stepID.Validate(); err != nil {
		return nil, err
	}
	return r.readThrough(ctx, r.cache.toKey(stepID), func(ctx context.Context) ([]*workflow.Transition, error) {
		return r.GraphRepository.TransitionsTo(ctx, stepID)
	})
}

// readThrough bypasses the cache for keys the unit of work has changed but not committed.
func (r *Repository) readThrough(
	ctx context.Context,
	key string,
	fetch func(context.Context) ([]*workflow.Transition, error),
) ([]*workflow.Transition, error) {
	if r.pending.has(key) {
		return fetch(ctx)
	}
	return r.cache.readThrough(ctx, key, fetch)
}

// AddTransition stores the transition and marks both endpoint lists stale.
func (r *Repository) AddTransition(ctx context.Context, transition *workflow.Transition) error {
	if err := r.GraphRepository.AddTransition(ctx, transition); err != nil {
		return err
	}

	keys := []string{r.cache.fromKey(transition.FromStepID()), r.cache.toKey(transition.ToStepID())}
	if r.pending == nil {
		r.cache.invalidate(ctx, keys)
		return nil
	}
	r.pending.add(keys...)
	return nil
}

// pendingKeys collects the keys a unit of work must drop once it commits.
type pendingKeys struct {
	keys []string
}

func (p *pendingKeys) add(keys ...string) {
	p.keys = append(p.keys, keys...)
}

func (p *pendingKeys) has(key string) bool {
	return p != nil && slices.Contains(p.keys, key)
}

func (p *pendingKeys) drain() []string {
	keys := p.keys
	p.keys = nil
	return keys
}
