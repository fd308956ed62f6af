package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier runs statements. *pgxpool.Pool, pgx.Tx and pgxmock pools all
// satisfy it, so repositories work the same inside and outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Beginner opens transactions.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type txKey struct{}

func txFromCtx(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(txKey{}).(pgx.Tx)
	return tx
}

// QuerierFromCtx returns the transaction opened by TxManager.RunInTx when ctx
// carries one, and db otherwise.
func QuerierFromCtx(ctx context.Context, db Querier) Querier {
	if tx := txFromCtx(ctx); tx != nil {
		return tx
	}
	return db
}
