// Package storage declares the database connection contract consumed by the
// stats generator.
package storage

import (
	"context"
	"database/sql"
)

// Conn is one scoped database connection. Callers must Close it on every path.
type Conn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
	Close() error
}

// ConnectionFactory acquires an opened connection per invocation.
type ConnectionFactory interface {
	Connect(ctx context.Context) (Conn, error)
}

// ConnectionFactoryFunc adapts a function to ConnectionFactory.
type ConnectionFactoryFunc func(ctx context.Context) (Conn, error)

// Connect calls f(ctx).
func (f ConnectionFactoryFunc) Connect(ctx context.Context) (Conn, error) {
	return f(ctx)
}

var _ Conn = (*sql.Conn)(nil)
