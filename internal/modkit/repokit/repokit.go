// Package repokit holds the seams repositories bind to
package repokit

import (
	"context"

	"figurefriday/internal/platform/store"
)

// Queryer is the read and write surface SQL repos run against
type Queryer = store.RowQuerier

// TxRunner is a Queryer that can also open a transaction
type TxRunner = store.TxRunner

// Binder binds a domain repo to a Queryer; a pool and a transaction bind the same way
type Binder[T any] interface {
	Bind(Queryer) T
}

// WithTx runs fn inside a transaction; fn's error rolls it back
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	return tx.Tx(ctx, fn)
}
