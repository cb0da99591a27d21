package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// SQLQuerier adapts a database/sql handle (lib/pq or go-sqlite3).
type SQLQuerier struct {
	db *sql.DB
}

func NewSQLQuerier(db *sql.DB) *SQLQuerier {
	return &SQLQuerier{db: db}
}

func (q *SQLQuerier) QueryRow(ctx context.Context, query string, args ...any) Row {
	return sqlRow{row: q.db.QueryRowContext(ctx, query, args...)}
}

func (q *SQLQuerier) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{Rows: rows}, nil
}

func (q *SQLQuerier) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := q.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type sqlRow struct {
	row *sql.Row
}

func (r sqlRow) Scan(dest ...any) error {
	err := r.row.Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNoRows
	}
	return err
}

type sqlRows struct {
	*sql.Rows
}

func (r sqlRows) Close() {
	_ = r.Rows.Close()
}

// NewSQLDB wraps an already open handle.
func NewSQLDB(db *sql.DB, dialect Dialect) *DB {
	return &DB{Querier: NewSQLQuerier(db), Dialect: dialect, closeFn: func() { _ = db.Close() }}
}

func openSQL(ctx context.Context, driver, dsn string, dialect Dialect, maxConns int) (*DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if dialect == DialectSQLite {
		// a single connection keeps :memory: databases shared across calls
		db.SetMaxOpenConns(1)
	} else if maxConns > 0 {
		db.SetMaxOpenConns(maxConns)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}
	return NewSQLDB(db, dialect), nil
}
