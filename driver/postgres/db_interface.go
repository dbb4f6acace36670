package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the query surface shared by the pool and an open transaction.
// Repositories issue all statements through it so that the same code runs
// inside and outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// DatabaseIface defines the database interface for testing
type DatabaseIface interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

type txContextKey struct{}

// querierFrom returns the transaction bound to the context when one is open,
// falling back to the pool otherwise.
func querierFrom(ctx context.Context, db Querier) Querier {
	if tx, ok := ctx.Value(txContextKey{}).(pgx.Tx); ok {
		return tx
	}
	return db
}
