package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"orderflow/internal/adapters/out/redis/graphcache"

	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDatabase connects to PostgreSQL and checks the connection.
func OpenDatabase(ctx context.Context, cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(gorm_postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err = sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// CloseDatabase releases the connection pool of db.
func CloseDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// OpenGraphCache connects the graph cache, or returns nil when REDIS_ADDR is unset.
// An unreachable Redis is logged and the service runs without the cache.
func OpenGraphCache(ctx context.Context, cfg Config, log *slog.Logger) *graphcache.Cache {
	if cfg.RedisAddr == "" {
		log.InfoContext(ctx, "Graph cache disabled")
		return nil
	}

	cache := graphcache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB,
		graphcache.WithTTL(cfg.GraphCacheTTL),
		graphcache.WithLogger(log),
	)
	if err := cache.Ping(ctx); err != nil {
		log.WarnContext(ctx, "Graph cache unavailable, reading the graph from the database",
			"addr", cfg.RedisAddr, "error", err)
		_ = cache.Close()
		return nil
	}

	log.InfoContext(ctx, "Graph cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.GraphCacheTTL)
	return cache
}
