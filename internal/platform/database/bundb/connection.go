package bundb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/lib/pq"              // PostgreSQL driver
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/extra/bundebug"
)

// Config is the subset of database configuration the connection layer needs.
type Config interface {
	DriverName() string
	DSN() string
	GetMaxOpenConns() int
	GetMaxIdleConns() int
	GetConnMaxLifetime() time.Duration
	GetConnMaxIdleTime() time.Duration
	QueryLogEnabled() bool
}

type DB struct {
	*bun.DB
	config Config
}

// Open connects using the configured dialect and wraps the handle in Bun.
func Open(cfg Config) (*DB, error) {
	var (
		sqlDB *sql.DB
		db    *bun.DB
		err   error
	)

	switch cfg.DriverName() {
	case "postgres":
		sqlDB, err = sql.Open("postgres", cfg.DSN())
		if err == nil {
			db = bun.NewDB(sqlDB, pgdialect.New())
		}
	case "mysql":
		sqlDB, err = sql.Open("mysql", cfg.DSN())
		if err == nil {
			db = bun.NewDB(sqlDB, mysqldialect.New())
		}
	case "sqlite":
		sqlDB, err = sql.Open(sqliteshim.ShimName, cfg.DSN())
		if err == nil {
			db = bun.NewDB(sqlDB, sqlitedialect.New())
		}
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.DriverName())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.GetMaxOpenConns())
	sqlDB.SetMaxIdleConns(cfg.GetMaxIdleConns())
	sqlDB.SetConnMaxLifetime(cfg.GetConnMaxLifetime())
	sqlDB.SetConnMaxIdleTime(cfg.GetConnMaxIdleTime())

	if cfg.QueryLogEnabled() {
		db.AddQueryHook(bundebug.NewQueryHook(
			bundebug.WithVerbose(true),
			bundebug.FromEnv("BUNDEBUG"),
		))
	}

	return &DB{DB: db, config: cfg}, nil
}

func (db *DB) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return db.DB.PingContext(ctx)
}

func (db *DB) Close() error {
	return db.DB.Close()
}
