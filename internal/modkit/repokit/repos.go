// Package repokit carries the query seams SQL repos bind to
package repokit

import (
	"context"

	"sayitanyway/internal/platform/store"
)

// Queryer is what a bound repo reads and writes through
type Queryer = store.RowQuerier

// TxRunner is the pool seam modules receive; it also serves plain queries
type TxRunner = store.TxRunner

type (
	Rows       = store.Rows
	Row        = store.Row
	CommandTag = store.CommandTag
)

// WithTx binds b inside one transaction and hands the bound repo to fn
func WithTx[T any](ctx context.Context, tx TxRunner, b Binder[T], fn func(T) error) error {
	return tx.Tx(ctx, func(q Queryer) error { return fn(MustBind(b, q)) })
}
