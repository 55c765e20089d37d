package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager runs service callbacks inside a single database transaction,
// threading the transaction through the context so repositories pick it up
// via QuerierFromCtx. Nesting RunInTx opens a second independent
// transaction, which is a bug in the caller.
type TxManager struct {
	pool *pgxpool.Pool
}

// NewTxManager creates a new TxManager.
func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

// RunInTx executes fn in a Read Committed transaction. The transaction
// commits when fn returns nil and rolls back when fn returns an error or
// panics; fn's error is returned unchanged so sentinel checks still work.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return pgx.BeginTxFunc(ctx, m.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		return fn(withTx(ctx, tx))
	})
}
