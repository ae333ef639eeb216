package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
)

// both mysql and sqlite accept '?' placeholders
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// Querier is the subset of *sql.DB (and *sql.Tx) the store reads through.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Store issues read-only queries against the animethemes schema.
// It holds no state besides the connection pool and is safe for concurrent use.
type Store struct {
	db Querier
}

func NewStore(db Querier) *Store {
	return &Store{db: db}
}

// Key selects a single row by id, slug, or both. Nil fields are not filtered on.
type Key struct {
	ID   *uint
	Slug *string
}

func InitDB(driverName, dataSourceName string, maxOpenConns int) (*sql.DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driverName, err)
	}

	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
		db.SetMaxIdleConns(maxOpenConns)
	}
	db.SetConnMaxLifetime(time.Hour)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach %s database: %w", driverName, err)
	}

	log.Printf("database initialized successfully (driver %s)", driverName)
	return db, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// selectMany runs b and scans every row. Zero rows yields an empty, non-nil slice.
// Query and scan errors are returned as the driver reported them.
func selectMany[T any](ctx context.Context, q Querier, b sq.SelectBuilder, scan func(rowScanner) (T, error)) ([]T, error) {
	sqlStr, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL query: %w", err)
	}

	rows, err := q.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// selectOne returns the first row of b, or nil when there is none.
func selectOne[T any](ctx context.Context, q Querier, b sq.SelectBuilder, scan func(rowScanner) (T, error)) (*T, error) {
	sqlStr, args, err := b.Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL query: %w", err)
	}

	v, err := scan(q.QueryRowContext(ctx, sqlStr, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func qualify(table string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = table + "." + c
	}
	return out
}

// withKey narrows b to the key's id and slug, when given.
func withKey(b sq.SelectBuilder, table, idColumn string, key Key) sq.SelectBuilder {
	if key.ID != nil {
		b = b.Where(sq.Eq{table + "." + idColumn: *key.ID})
	}
	if key.Slug != nil {
		b = b.Where(sq.Eq{table + ".slug": *key.Slug})
	}
	return b
}

func withLimit(b sq.SelectBuilder, limit int) sq.SelectBuilder {
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	return b
}

// never matches; used when a filter value has no stored code
var matchNothing = sq.Expr("1 = 0")
