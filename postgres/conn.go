package postgres

import (
	"context"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// stmtCacheSize bounds the number of statements a StmtConn keeps
// prepared on the server at once.
const stmtCacheSize = 512

// Conn is the execution capability consumed by bound queries: execute
// SQL with positional arguments under a caller-chosen statement name and
// return rows. Adapters exist for pgxpool.Pool and pgx.Conn.
type Conn interface {
	Execute(ctx context.Context, name, sql string, args []any) (pgx.Rows, error)
}

// PoolConn adapts a pgxpool.Pool. The pool maintains its own statement
// cache keyed by query text on each underlying connection, so the
// statement name is accepted and ignored.
type PoolConn struct {
	pool *pgxpool.Pool
}

// NewPool creates a Conn backed by a pgxpool.Pool.
func NewPool(pool *pgxpool.Pool) *PoolConn {
	return &PoolConn{pool: pool}
}

// Execute runs the query on the pool.
func (c *PoolConn) Execute(ctx context.Context, _, sql string, args []any) (pgx.Rows, error) {
	return c.pool.Query(ctx, sql, args...)
}

// StmtConn adapts a single pgx.Conn, preparing each distinct statement
// name once and executing by name afterward. Prepared names are tracked
// in an LRU; eviction deallocates the statement on the server.
type StmtConn struct {
	conn     *pgx.Conn
	mu       sync.Mutex
	prepared *lru.Cache[string, string]
}

// NewConn creates a Conn backed by a single pgx.Conn.
func NewConn(conn *pgx.Conn) *StmtConn {
	c := &StmtConn{conn: conn}
	c.prepared, _ = lru.NewWithEvict[string, string](stmtCacheSize, func(name, _ string) {
		_ = conn.Deallocate(context.Background(), name)
	})
	return c
}

// Execute prepares the statement under name on first use, then runs it
// by name so the server reuses the parsed plan.
func (c *StmtConn) Execute(ctx context.Context, name, sql string, args []any) (pgx.Rows, error) {
	if err := c.prepare(ctx, name, sql); err != nil {
		return nil, err
	}
	return c.conn.Query(ctx, name, args...)
}

func (c *StmtConn) prepare(ctx context.Context, name, sql string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.prepared.Get(name); ok {
		return nil
	}
	if _, err := c.conn.Prepare(ctx, name, sql); err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	c.prepared.Add(name, sql)
	return nil
}
