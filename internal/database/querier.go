// Package database exposes the query primitive the repositories run on, with
// adapters for pgx and database/sql drivers.
package database

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
)

// ErrNoRows is returned by Row.Scan when the query matched nothing, whatever the
// underlying driver.
var ErrNoRows = errors.New("database: no rows in result set")

type Row interface {
	Scan(dest ...any) error
}

type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// Querier runs a statement and returns a single row, all rows, or the number of
// affected rows.
type Querier interface {
	QueryRow(ctx context.Context, query string, args ...any) Row
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	Exec(ctx context.Context, query string, args ...any) (int64, error)
}

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// StatementBuilder returns a squirrel builder using the dialect's placeholders.
func (d Dialect) StatementBuilder() sq.StatementBuilderType {
	if d == DialectSQLite {
		return sq.StatementBuilder.PlaceholderFormat(sq.Question)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// DB is an open connection: the Querier, its dialect and a way to release it.
type DB struct {
	Querier
	Dialect Dialect
	closeFn func()
}

func (db *DB) Close() {
	if db.closeFn != nil {
		db.closeFn()
	}
}
