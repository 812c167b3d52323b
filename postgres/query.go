package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/zoobzio/fragql"
)

// RowError reports a result row rejected by a WithRowCheck predicate.
// The whole call fails; no partial result is returned.
type RowError struct {
	Index int
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d failed validation", e.Index)
}

// Option configures a bound query.
type Option[T any] func(*settings[T])

type settings[T any] struct {
	check func(T) bool
}

// WithRowCheck validates every returned row. The first row for which
// check returns false fails the call with a *RowError carrying its
// 0-based position.
func WithRowCheck[T any](check func(T) bool) Option[T] {
	return func(s *settings[T]) {
		s.check = check
	}
}

// Query is a fragment bound to a connection. Binding linearizes the
// fragment once with placeholders numbered from 1 and fixes a generated
// statement name, so every invocation reuses the same text and the
// connection can reuse the prepared statement. A Query holds no mutable
// state; invocations are independent and safe to run concurrently.
type Query[A, T any] struct {
	conn      Conn
	name      string
	sql       string
	accessors []fragql.Accessor[A]
	scan      pgx.RowToFunc[T]
	check     func(T) bool
}

// Bind links a finalized fragment to a connection. scan converts each
// returned row to T; pgx.RowToStructByName and friends fit directly.
func Bind[A, T any](f fragql.Fragment[A], conn Conn, scan pgx.RowToFunc[T], opts ...Option[T]) (*Query[A, T], error) {
	sql, accessors, err := fragql.Linearize(f, New(), 1)
	if err != nil {
		return nil, fmt.Errorf("linearize fragment: %w", err)
	}

	var s settings[T]
	for _, opt := range opts {
		opt(&s)
	}

	return &Query[A, T]{
		conn:      conn,
		name:      uuid.NewString(),
		sql:       sql,
		accessors: accessors,
		scan:      scan,
		check:     s.check,
	}, nil
}

// BindTemplate finalizes the builder and binds the result.
func BindTemplate[A, T any](b *fragql.Builder[A], conn Conn, scan pgx.RowToFunc[T], opts ...Option[T]) (*Query[A, T], error) {
	return Bind(b.Fragment(), conn, scan, opts...)
}

// SQL returns the linearized query text.
func (q *Query[A, T]) SQL() string {
	return q.sql
}

// Name returns the generated statement name passed to the connection on
// every invocation.
func (q *Query[A, T]) Name() string {
	return q.name
}

// Exec resolves every accessor against arg to produce the ordered bind
// list, delegates to the connection, and collects the typed rows.
// Connection errors pass through unchanged.
func (q *Query[A, T]) Exec(ctx context.Context, arg A) ([]T, error) {
	args := make([]any, len(q.accessors))
	for i, get := range q.accessors {
		args[i] = get(arg)
	}

	rows, err := q.conn.Execute(ctx, q.name, q.sql, args)
	if err != nil {
		return nil, err
	}

	out, err := pgx.CollectRows(rows, q.scan)
	if err != nil {
		return nil, err
	}

	if q.check != nil {
		for i, row := range out {
			if !q.check(row) {
				return nil, &RowError{Index: i}
			}
		}
	}
	return out, nil
}
