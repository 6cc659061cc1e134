package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type DatabaseConfig struct {
	BaseConfig
	SQL SQLConfig `envconfig:"DB"`
}

// SQLConfig covers every supported dialect; Path applies to sqlite only and
// the host/port block applies to the server dialects.
type SQLConfig struct {
	Driver   string `envconfig:"DRIVER" default:"postgres" validate:"oneof=postgres mysql sqlite"`
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     int    `envconfig:"PORT" default:"5432"`
	User     string `envconfig:"USER" default:"postgres"`
	Password string `envconfig:"PASSWORD" default:""`
	Database string `envconfig:"NAME" default:"scaffold"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
	Path     string `envconfig:"SQLITE_PATH" default:"file::memory:?cache=shared"`

	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"5m"`
	ConnMaxIdleTime time.Duration `envconfig:"CONN_MAX_IDLE_TIME" default:"5m"`

	QueryLog bool `envconfig:"QUERY_LOG" default:"false"`
}

// DSN renders the connection string for the configured driver.
func (c *SQLConfig) DSN() string {
	switch c.Driver {
	case DriverMySQL:
		// clientFoundRows makes UPDATE report matched rows rather than
		// changed rows, which the repository's missing-row detection needs.
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&clientFoundRows=true",
			c.User, c.Password, c.Host, c.Port, c.Database)
	case DriverSQLite:
		return c.Path
	default:
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
	}
}

func (c *SQLConfig) DriverName() string {
	return c.Driver
}

func (c *SQLConfig) GetMaxOpenConns() int {
	return c.MaxOpenConns
}

func (c *SQLConfig) GetMaxIdleConns() int {
	return c.MaxIdleConns
}

func (c *SQLConfig) GetConnMaxLifetime() time.Duration {
	return c.ConnMaxLifetime
}

func (c *SQLConfig) GetConnMaxIdleTime() time.Duration {
	return c.ConnMaxIdleTime
}

func (c *SQLConfig) QueryLogEnabled() bool {
	return c.QueryLog
}

func LoadDatabase() (*DatabaseConfig, error) {
	var cfg DatabaseConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
