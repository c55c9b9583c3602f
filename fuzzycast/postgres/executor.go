package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/pyramind10/fuzzy-cast/fuzzycast/query"
)

// Executor runs composed queries against a PostgreSQL pool. It is the thin
// execution adapter downstream of the composer; composition itself never
// touches a connection.
type Executor struct {
	pool *pgxpool.Pool
}

func NewExecutor(pool *pgxpool.Pool) *Executor {
	return &Executor{pool: pool}
}

// Query compiles and executes the query, returning the row stream.
func (e *Executor) Query(ctx context.Context, q query.Query) (pgx.Rows, error) {
	sql, params, err := Compile(q)
	if err != nil {
		return nil, err
	}
	rows, err := e.pool.Query(ctx, sql, params...)
	if err != nil {
		return nil, errors.Wrapf(err, "execute %q", sql)
	}
	return rows, nil
}

// Count executes the query with the select list replaced by count(*).
func (e *Executor) Count(ctx context.Context, q query.Query) (int64, error) {
	sql, params, err := Compile(q)
	if err != nil {
		return 0, err
	}
	sql = "SELECT count(*) FROM (" + sql + ") AS matched"
	var count int64
	err = e.pool.QueryRow(ctx, sql, params...).Scan(&count)
	if err != nil {
		return 0, errors.Wrapf(err, "execute %q", sql)
	}
	return count, nil
}
