// Package graphcache keeps the outgoing and incoming transitions of each step in Redis so
// the approval engine does not hit PostgreSQL for every routed group.
//
// The cache sits in front of ports.GraphRepository. Entries expire after the configured TTL
// and are deleted when a unit of work that added transitions commits. Every key has a
// generation counter that invalidation increments; a fill whose generation moved while the
// database was read is dropped, so a list read before a commit is never stored after it.
// A Redis failure never fails a read: the decorator logs it and falls back to the wrapped
// repository.
package graphcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/workflow"

	backend "github.com/redis/go-redis/v9"
)

const defaultPrefix = "orderflow:graph:"

var errStaleFill = errors.New("generation changed during the fill")

// Cache owns the Redis client and the key layout.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

type Option func(*Cache)

// WithTTL sets the expiration of cached transition lists. Zero keeps them until invalidated.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// WithLogger sets the logger used for Redis failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		c.logger = logger
	}
}

// New connects to Redis at address.
func New(address, password string, db int, opts ...Option) *Cache {
	return NewFromClient(backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	}), opts...)
}

// NewFromClient creates a cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	c := &Cache{
		client: client,
		prefix: defaultPrefix,
		ttl:    5 * time.Minute,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.logger = c.logger.With("component", "graph_cache")
	return c
}

// Ping checks the connection.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the client's connections.
func (c *Cache) Close() error {
	return c.client.Close()
}

func (c *Cache) fromKey(stepID kernel.UUID) string {
	return c.prefix + "from:" + stepID.String()
}

func (c *Cache) toKey(stepID kernel.UUID) string {
	return c.prefix + "to:" + stepID.String()
}

func (c *Cache) generationKey(key string) string {
	return c.prefix + "gen:" + strings.TrimPrefix(key, c.prefix)
}

type transitionRecord struct {
	ID            string `json:"id"`
	ScreenID      string `json:"screenId"`
	FromStepID    string `json:"fromStepId"`
	ToStepID      string `json:"toStepId"`
	IsCustomRoute bool   `json:"isCustomRoute"`
}

// load returns ok=false on a miss.
func (c *Cache) load(ctx context.Context, key string) ([]*workflow.Transition, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	var records []transitionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, false, fmt.Errorf("failed to decode %s: %w", key, err)
	}

	transitions := make([]*workflow.Transition, 0, len(records))
	for _, r := range records {
		ids, err := kernel.UUIDsFromStrings([]string{r.ID, r.ScreenID, r.FromStepID, r.ToStepID})
		if err != nil {
			return nil, false, fmt.Errorf("failed to decode %s: %w", key, err)
		}
		t, err := workflow.NewTransition(ids[0], ids[1], ids[2], ids[3], r.IsCustomRoute)
		if err != nil {
			return nil, false, fmt.Errorf("failed to decode %s: %w", key, err)
		}
		transitions = append(transitions, t)
	}
	return transitions, true, nil
}

// generation returns the current generation of key, empty when it was never invalidated.
func (c *Cache) generation(ctx context.Context, key string) (string, error) {
	gen, err := c.client.Get(ctx, c.generationKey(key)).Result()
	if err != nil && !errors.Is(err, backend.Nil) {
		return "", fmt.Errorf("failed to read the generation of %s: %w", key, err)
	}
	return gen, nil
}

// store writes transitions under key unless the generation of key differs from gen.
// The generation key is watched so an invalidation racing the write aborts it.
func (c *Cache) store(ctx context.Context, key, gen string, transitions []*workflow.Transition) error {
	records := make([]transitionRecord, 0, len(transitions))
	for _, t := range transitions {
		records = append(records, transitionRecord{
			ID:            t.ID().String(),
			ScreenID:      t.ScreenID().String(),
			FromStepID:    t.FromStepID().String(),
			ToStepID:      t.ToStepID().String(),
			IsCustomRoute: t.IsCustomRoute(),
		})
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	genKey := c.generationKey(key)
	err = c.client.Watch(ctx, func(tx *backend.Tx) error {
		current, err := tx.Get(ctx, genKey).Result()
		if err != nil && !errors.Is(err, backend.Nil) {
			return err
		}
		if current != gen {
			return errStaleFill
		}

		_, err = tx.TxPipelined(ctx, func(pipe backend.Pipeliner) error {
			pipe.Set(ctx, key, data, c.ttl)
			return nil
		})
		return err
	}, genKey)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, errStaleFill), errors.Is(err, backend.TxFailedErr):
		c.logger.DebugContext(ctx, "skipped filling an invalidated key", "key", key)
		return nil
	default:
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
}

func (c *Cache) invalidate(ctx context.Context, keys []string) {
	if len(keys) == 0 {
		return
	}
	_, err := c.client.TxPipelined(ctx, func(pipe backend.Pipeliner) error {
		pipe.Del(ctx, keys...)
		for _, key := range keys {
			pipe.Incr(ctx, c.generationKey(key))
		}
		return nil
	})
	if err != nil {
		c.logger.WarnContext(ctx, "failed to invalidate cached transitions", "keys", keys, "err", err)
	}
}

// readThrough serves key from Redis and fills it from fetch on a miss.
func (c *Cache) readThrough(
	ctx context.Context,
	key string,
	fetch func(context.Context) ([]*workflow.Transition, error),
) ([]*workflow.Transition, error) {
	cached, ok, err := c.load(ctx, key)
	if err != nil {
		c.logger.WarnContext(ctx, "cache read failed, using database", "key", key, "err", err)
	}
	if ok {
		return cached, nil
	}

	gen, genErr := c.generation(ctx, key)

	transitions, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	if genErr != nil {
		c.logger.WarnContext(ctx, "cache write skipped", "key", key, "err", genErr)
		return transitions, nil
	}
	if err := c.store(ctx, key, gen, transitions); err != nil {
		c.logger.WarnContext(ctx, "cache write failed", "key", key, "err", err)
	}
	return transitions, nil
}
