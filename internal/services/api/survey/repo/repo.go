// Package repo loads survey respondents from a CSV export or ClickHouse
package repo

import (
	"context"

	"figurefriday/internal/core/survey"
	"figurefriday/internal/platform/config"
	perr "figurefriday/internal/platform/errors"
	"figurefriday/internal/platform/store"

	"github.com/google/uuid"
)

// Source names accepted by DATA_SURVEY_SOURCE
const (
	SourceCSV        = "csv"
	SourceClickhouse = "clickhouse"
)

// DefaultCSVPath is read when DATA_SURVEY_CSV is unset
const DefaultCSVPath = "data/steak-risk-survey.csv"

// Dataset is one immutable survey snapshot
type Dataset struct {
	Respondents []survey.Respondent
	// Version changes whenever the underlying rows change
	Version uuid.UUID
}

// Repo is the minimal persistence surface for the survey dashboard
type Repo interface {
	Load(ctx context.Context) (Dataset, error)
}

// FromConfig picks the source named by DATA_SURVEY_SOURCE
// the clickhouse source needs a configured ClickHouse seam
func FromConfig(cfg config.Conf, reg *survey.Registry, db store.Clickhouse) (Repo, error) {
	data := cfg.Prefix("DATA_")
	switch data.MayEnum("SURVEY_SOURCE", SourceCSV, SourceCSV, SourceClickhouse) {
	case SourceClickhouse:
		if db == nil {
			return nil, perr.New(perr.ErrorCodeUnavailable, "survey: clickhouse source selected but SERVICE_CLICKHOUSE_DBURL is not set")
		}
		return NewCH(db, reg), nil
	default:
		return NewCSV(data.MayString("SURVEY_CSV", DefaultCSVPath), reg), nil
	}
}
