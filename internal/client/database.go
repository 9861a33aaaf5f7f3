package client

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"scriptmarket/internal/config"
	"scriptmarket/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Backoff controls how long start-up waits for the database.
type Backoff struct {
	PingTimeout time.Duration
	MaxWait     time.Duration
	Initial     time.Duration
	Max         time.Duration
}

var DefaultBackoff = Backoff{
	PingTimeout: 5 * time.Second,
	MaxWait:     30 * time.Second,
	Initial:     500 * time.Millisecond,
	Max:         5 * time.Second,
}

func dialector(cfg *config.Database) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "sqlite":
		return sqlite.Open(cfg.URL), nil
	case "postgres":
		return postgres.Open(cfg.URL), nil
	case "mysql":
		return mysql.Open(cfg.URL), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// InitDatabase opens the configured database, waits until it answers and migrates the schema.
func InitDatabase(ctx context.Context, cfg *config.Database, backoff Backoff) (*gorm.DB, error) {
	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(d, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}

	// Connection pool (important for webhooks)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)
	if cfg.Driver == "sqlite" {
		// sqlite allows one writer; a single connection also keeps :memory: databases shared
		sqlDB.SetMaxOpenConns(1)
	}

	if err := PingWithBackoff(ctx, sqlDB, backoff); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	if err := db.WithContext(ctx).AutoMigrate(model.AllModels()...); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return db, nil
}

// PingWithBackoff retries until the database responds, ctx is cancelled or MaxWait elapses.
func PingWithBackoff(ctx context.Context, db *sql.DB, b Backoff) error {
	deadline := time.Now().Add(b.MaxWait)
	wait := b.Initial
	var lastErr error

	for {
		pingCtx, cancel := context.WithTimeout(ctx, b.PingTimeout)
		lastErr = db.PingContext(pingCtx)
		cancel()

		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil || time.Now().After(deadline) {
			break
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("ping database: %w", ctx.Err())
		case <-time.After(wait):
		}

		wait *= 2
		if wait > b.Max {
			wait = b.Max
		}
	}

	return fmt.Errorf("ping database: %w", lastErr)
}
