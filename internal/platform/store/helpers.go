package store

import "context"

// Querier is the read half shared by postgres and clickhouse seams
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
}

// Each feeds every row of sql to fn and stops at fn's first error
func Each(ctx context.Context, q Querier, fn func(Row) error, sql string, args ...any) error {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err = fn(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// Many scans every row of sql into a T, in result order
func Many[T any](ctx context.Context, q Querier, scan func(Row) (T, error), sql string, args ...any) ([]T, error) {
	var out []T
	err := Each(ctx, q, func(row Row) error {
		v, err := scan(row)
		if err == nil {
			out = append(out, v)
		}
		return err
	}, sql, args...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
