package repo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"figurefriday/internal/core/violation"
	"figurefriday/internal/modkit/repokit"
	perr "figurefriday/internal/platform/errors"
	"figurefriday/internal/platform/store"
)

// CreateTableSQL creates the snapshot table when missing
const CreateTableSQL = `
create table if not exists violation_snapshot (
	position int primary key,
	code     int not null,
	payload  jsonb not null
)`

const selectSnapshot = `
select position, code, payload
from violation_snapshot
order by position
`

type (
	// PG implements Repo over the violation_snapshot table
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

type snapshotRow struct {
	position int
	code     int
	payload  []byte
}

func scanSnapshotRow(r store.Row) (snapshotRow, error) {
	var sr snapshotRow
	err := r.Scan(&sr.position, &sr.code, &sr.payload)
	return sr, err
}

// Load reads every row in position order and validates each payload
func (r *queries) Load(ctx context.Context) (Snapshot, error) {
	rows, err := store.Many(ctx, r.q, scanSnapshotRow, selectSnapshot)
	if err != nil {
		return Snapshot{}, perr.FromPostgres(err, "violations: query snapshot")
	}

	var canon bytes.Buffer
	items := make([]violation.Violation, 0, len(rows))
	for _, sr := range rows {
		v, err := violation.DecodeRecord(sr.payload)
		if err != nil {
			return Snapshot{}, fmt.Errorf("violations: position %d: %w", sr.position, err)
		}
		if v.Code != sr.code {
			return Snapshot{}, perr.Wrapf(violation.ErrMalformed, perr.ErrorCodeValidation,
				"violations: position %d: column code %d, payload code %d", sr.position, sr.code, v.Code)
		}
		fmt.Fprintf(&canon, "%d\x1f", sr.position)
		canon.Write(sr.payload)
		canon.WriteByte('\n')
		items = append(items, v)
	}
	return Snapshot{Items: items, Version: store.ContentVersion("violations", canon.Bytes())}, nil
}

// Seed replaces the table contents with items in one transaction
func Seed(ctx context.Context, tx repokit.TxRunner, items []violation.Violation) (int, error) {
	n := 0
	err := repokit.WithTx(ctx, tx, func(q repokit.Queryer) error {
		if _, err := q.Exec(ctx, CreateTableSQL); err != nil {
			return err
		}
		if _, err := q.Exec(ctx, "delete from violation_snapshot"); err != nil {
			return err
		}
		for i, v := range items {
			payload, err := json.Marshal(v)
			if err != nil {
				return err
			}
			if _, err := q.Exec(ctx,
				"insert into violation_snapshot (position, code, payload) values ($1, $2, $3)",
				i, v.Code, payload); err != nil {
				return err
			}
			n++
		}
		return nil
	})
	if err != nil {
		return 0, perr.FromPostgres(err, "violations: seed snapshot")
	}
	return n, nil
}
