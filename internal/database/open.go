package database

import (
	"context"
	"fmt"

	"github.com/chrisdamba/foodcatalogsim/internal/models"
)

const (
	DriverPgx      = "pgx"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Open connects using the configured driver.
func Open(ctx context.Context, cfg models.DatabaseConfig) (*DB, error) {
	switch cfg.Driver {
	case DriverPgx, "":
		return openPgx(ctx, cfg.PostgresDSN(), cfg.MaxConns)
	case DriverPostgres:
		return openSQL(ctx, DriverPostgres, cfg.PostgresDSN(), DialectPostgres, cfg.MaxConns)
	case DriverSQLite:
		dsn := cfg.DSN
		if dsn == "" {
			dsn = cfg.DBName + ".db"
		}
		return openSQL(ctx, DriverSQLite, dsn, DialectSQLite, 1)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
