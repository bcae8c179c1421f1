package repokit

import (
	"context"
	"errors"
	"testing"

	"figurefriday/internal/platform/store"
)

type fakeQ struct{ execs []string }

func (f *fakeQ) Exec(_ context.Context, sql string, _ ...any) (store.CommandTag, error) {
	f.execs = append(f.execs, sql)
	return nil, nil
}
func (f *fakeQ) Query(context.Context, string, ...any) (store.Rows, error) { return nil, nil }
func (f *fakeQ) QueryRow(context.Context, string, ...any) store.Row     { return nil }

// fakeTx hands its inner Queryer to fn and reports err after fn succeeds
type fakeTx struct {
	fakeQ
	inner  *fakeQ
	err    error
	called int
}

func (f *fakeTx) Tx(_ context.Context, fn func(q Queryer) error) error {
	f.called++
	if err := fn(f.inner); err != nil {
		return err
	}
	return f.err
}

type snapshotRepo struct{ q Queryer }

type snapshotBinder struct{}

func (snapshotBinder) Bind(q Queryer) snapshotRepo { return snapshotRepo{q: q} }

func TestWithTx_BindsInsideTransaction(t *testing.T) {
	t.Parallel()

	tx := &fakeTx{inner: &fakeQ{}}
	var b Binder[snapshotRepo] = snapshotBinder{}

	err := WithTx(context.Background(), tx, func(q Queryer) error {
		r := b.Bind(q)
		_, err := r.q.Exec(context.Background(), "delete from violation_snapshot")
		return err
	})
	if err != nil {
		t.Fatalf("WithTx: %v", err)
	}
	if tx.called != 1 {
		t.Fatalf("Tx calls = %d, want 1", tx.called)
	}
	// the statement ran on the transaction, not the pool
	if len(tx.inner.execs) != 1 || len(tx.execs) != 0 {
		t.Fatalf("inner=%v outer=%v", tx.inner.execs, tx.execs)
	}
}

func TestWithTx_PropagatesErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	tx := &fakeTx{inner: &fakeQ{}}
	if err := WithTx(context.Background(), tx, func(Queryer) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("fn error = %v", err)
	}

	commit := errors.New("commit failed")
	tx = &fakeTx{inner: &fakeQ{}, err: commit}
	if err := WithTx(context.Background(), tx, func(Queryer) error { return nil }); !errors.Is(err, commit) {
		t.Fatalf("tx error = %v", err)
	}
}
