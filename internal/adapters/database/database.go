package database

import (
	"context"
	"sync"

	"github.com/uptrace/bun"

	"scaffold/internal/config"
	"scaffold/internal/platform/database/bundb"
	"scaffold/internal/platform/logger"
)

// Lifecycle owns the database handle across fx start/stop. Repositories get
// the Bun handle through Connection() and must tolerate a nil return before
// Start or after Stop.
type Lifecycle struct {
	cfg    *config.DatabaseConfig
	logger logger.Logger
	db     *bundb.DB
	mu     sync.Mutex
}

func NewLifecycle(cfg *config.DatabaseConfig, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		cfg:    cfg,
		logger: log,
	}
}

func (d *Lifecycle) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db != nil {
		d.logger.Warn("Database connection already exists, closing existing connection")
		if err := d.db.Close(); err != nil {
			d.logger.Error("Failed to close existing database connection", logger.Error(err))
		}
		d.db = nil
	}

	d.logger.Info("Starting database connection",
		logger.String("driver", d.cfg.SQL.Driver))

	db, err := bundb.Open(&d.cfg.SQL)
	if err != nil {
		d.logger.Error("Failed to open database connection", logger.Error(err))
		return err
	}

	if err := db.Ping(ctx); err != nil {
		d.logger.Error("Failed to ping database", logger.Error(err))
		if closeErr := db.Close(); closeErr != nil {
			d.logger.Error("Failed to close database after ping failure", logger.Error(closeErr))
		}
		return err
	}

	d.db = db
	d.logger.Info("Database connected", logger.String("driver", d.cfg.SQL.Driver))
	return nil
}

func (d *Lifecycle) Stop(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db == nil {
		return nil
	}

	d.logger.Info("Closing database connection")

	done := make(chan error, 1)
	go func() {
		done <- d.db.Close()
	}()

	select {
	case err := <-done:
		d.db = nil
		if err != nil {
			d.logger.Error("Error closing database connection", logger.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
		d.logger.Warn("Database shutdown timeout, forcing close")
		d.db = nil
		return ctx.Err()
	}
}

// Connection returns the live handle, or nil when not started.
func (d *Lifecycle) Connection() *bundb.DB {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.db
}

// BunDB implements repository.DBSource.
func (d *Lifecycle) BunDB() *bun.DB {
	if db := d.Connection(); db != nil {
		return db.DB
	}
	return nil
}
