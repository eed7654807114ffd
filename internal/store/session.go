package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Querier is the subset of database/sql operations the repositories need.
// Both *sql.DB (the shared pool) and *sql.Conn (a request-scoped session)
// satisfy it, so a repository runs on whichever the context carries.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// sessionCtxKey is a private context key type for the request database session.
type sessionCtxKey struct{}

// AcquireSession checks a single connection out of the pool for the duration
// of one request. All repository calls made with a context produced by
// [WithSession] will run on this connection. The caller owns the connection
// and must Close it to return it to the pool, regardless of the request
// outcome.
func (db *DB) AcquireSession(ctx context.Context) (*sql.Conn, error) {
	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("error acquiring database session: %w", err)
	}

	return conn, nil
}

// WithSession returns a context carrying conn as the database session for
// downstream repository calls.
func WithSession(ctx context.Context, conn *sql.Conn) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, conn)
}

// SessionFromContext returns the request-scoped database session stored in
// ctx, if any.
func SessionFromContext(ctx context.Context) (*sql.Conn, bool) {
	conn, ok := ctx.Value(sessionCtxKey{}).(*sql.Conn)
	if !ok || conn == nil {
		return nil, false
	}

	return conn, true
}

// session resolves the [Querier] for the given context: the request-scoped
// connection when one was acquired, the shared pool otherwise. The pool
// fallback keeps repositories usable outside the HTTP request path
// (migrations, tests, CLI tooling).
func (db *DB) session(ctx context.Context) Querier {
	if conn, ok := SessionFromContext(ctx); ok {
		return conn
	}

	return db.DB
}
