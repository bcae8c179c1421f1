// Package repo loads violation snapshots from a JSON file or Postgres
package repo

import (
	"context"

	"figurefriday/internal/core/violation"
	"figurefriday/internal/modkit/repokit"
	"figurefriday/internal/platform/config"
	perr "figurefriday/internal/platform/errors"

	"github.com/google/uuid"
)

// Source names accepted by DATA_VIOLATIONS_SOURCE
const (
	SourceFile = "file"
	SourcePG   = "pg"
)

// DefaultFile is read when DATA_VIOLATIONS_FILE is unset
const DefaultFile = "data/nyc_parking_violation_data.json"

// Snapshot is one immutable, ordered set of records
type Snapshot struct {
	Items   []violation.Violation
	Version uuid.UUID
}

// Repo is the minimal persistence surface for the violations dashboard
type Repo interface {
	Load(ctx context.Context) (Snapshot, error)
}

// FromConfig picks the source named by DATA_VIOLATIONS_SOURCE
// the pg source needs a configured Postgres seam
func FromConfig(cfg config.Conf, q repokit.Queryer) (Repo, error) {
	data := cfg.Prefix("DATA_")
	switch data.MayEnum("VIOLATIONS_SOURCE", SourceFile, SourceFile, SourcePG) {
	case SourcePG:
		if q == nil {
			return nil, perr.New(perr.ErrorCodeUnavailable, "violations: pg source selected but SERVICE_PGSQL_DBURL is not set")
		}
		return NewPG().Bind(q), nil
	default:
		return NewFile(data.MayString("VIOLATIONS_FILE", DefaultFile)), nil
	}
}
