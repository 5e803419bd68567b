package tx

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
)

type key string

const (
	// KeyTx carries the repository whose WithTx opens request transactions.
	KeyTx = key("tx")
	// KeySqlTx carries the open transaction itself; repositories pick it up
	// through Chk and fall back to the pool when absent.
	KeySqlTx = key("sql_tx")
)

type DbRepo interface {
	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type Tx struct {
	DbRepo DbRepo
}

func TxMiddlewareHTTP(repo DbRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), KeyTx, Tx{DbRepo: repo})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TxExecute runs cb inside a single transaction; every repository call made
// through the callback context joins it.
func TxExecute(ctx context.Context, cb func(ctx context.Context) error) error {
	t, ok := ctx.Value(KeyTx).(Tx)
	if !ok {
		return fmt.Errorf("transaction is not available in this context")
	}
	return t.DbRepo.WithTx(ctx, cb)
}

func WithSqlTx(ctx context.Context, transaction *sqlx.Tx) context.Context {
	return context.WithValue(ctx, KeySqlTx, transaction)
}

func SqlTxFromContext(ctx context.Context) (*sqlx.Tx, bool) {
	transaction, ok := ctx.Value(KeySqlTx).(*sqlx.Tx)
	return transaction, ok
}
