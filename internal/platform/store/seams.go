package store

import "context"

// the narrow interfaces repos and loaders code against; pgx and clickhouse-go stay behind them

type (
	// Row is one result row
	Row interface {
		Scan(dest ...any) error
	}

	// Rows is a forward only cursor; Close is safe after Next returns false
	Rows interface {
		Columns() []string
		Next() bool
		Scan(dest ...any) error
		Err() error
		Close()
	}

	// CommandTag reports what an Exec touched
	CommandTag interface {
		RowsAffected() int64
		String() string
	}

	// RowQuerier runs sql against a pool or inside a transaction
	RowQuerier interface {
		Query(ctx context.Context, sql string, args ...any) (Rows, error)
		QueryRow(ctx context.Context, sql string, args ...any) Row
		Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	}

	// TxRunner is the postgres seam: a RowQuerier that can also open a transaction
	// fn's error rolls the transaction back
	TxRunner interface {
		RowQuerier
		Tx(ctx context.Context, fn func(q RowQuerier) error) error
	}

	// Clickhouse is the columnar seam the survey loader and seeder use
	Clickhouse interface {
		Query(ctx context.Context, sql string, args ...any) (Rows, error)
		Exec(ctx context.Context, sql string, args ...any) error
		Insert(ctx context.Context, table string, rows [][]any) error
		Close() error
	}

	// Pinger is anything /meta/ready can probe
	Pinger interface {
		Ping(ctx context.Context) error
	}
)
