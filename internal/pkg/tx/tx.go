package tx

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
)

type key string

const (
	KeyTx = key("tx")

	keySqlxTx = key("sqlx_tx")
)

type TxRepo interface {
	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type Tx struct {
	DbRepo TxRepo
}

// TxMiddlewareHTTP makes the repository's transaction entry point
// available to handlers through the request context.
func TxMiddlewareHTTP(repo TxRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), KeyTx, Tx{DbRepo: repo})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TxExecute runs cb inside a database transaction configured by
// TxMiddlewareHTTP.
func TxExecute(ctx context.Context, cb func(ctx context.Context) error) error {
	t, ok := ctx.Value(KeyTx).(Tx)
	if !ok {
		return fmt.Errorf("transaction is not configured in context")
	}

	return t.DbRepo.WithTx(ctx, cb)
}

// Inject stores an open sqlx transaction in the context so that
// repository calls made from cb run on it.
func Inject(ctx context.Context, sqlxTx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, keySqlxTx, sqlxTx)
}

// FromContext returns the sqlx transaction of the current pipeline, if
// one was started.
func FromContext(ctx context.Context) (*sqlx.Tx, bool) {
	sqlxTx, ok := ctx.Value(keySqlxTx).(*sqlx.Tx)
	return sqlxTx, ok
}
