package repo

import (
	"bytes"
	"context"
	"sort"

	"figurefriday/internal/core/survey"
	perr "figurefriday/internal/platform/errors"
	"figurefriday/internal/platform/store"
)

// Table is the long-format response table: one row per answered field
const Table = "survey_responses"

// CreateTableSQL creates Table when missing
const CreateTableSQL = `
CREATE TABLE IF NOT EXISTS survey_responses (
	respondent_id String,
	field         LowCardinality(String),
	response      String
) ENGINE = MergeTree
ORDER BY (respondent_id, field)
`

// TruncateTableSQL empties Table before a reseed
const TruncateTableSQL = `TRUNCATE TABLE IF EXISTS survey_responses`

const selectResponses = `
SELECT respondent_id, field, response
FROM survey_responses
ORDER BY respondent_id, field
`

// CH reads respondents from ClickHouse
type CH struct {
	db  store.Clickhouse
	reg *survey.Registry
}

// NewCH returns a repo over db
func NewCH(db store.Clickhouse, reg *survey.Registry) *CH {
	return &CH{db: db, reg: reg}
}

// Load folds the long table back into respondents.
// rows for unknown fields or out-of-set answers are dropped like the csv loader does
func (c *CH) Load(ctx context.Context) (Dataset, error) {
	var (
		order []string
		byID  = map[string]*survey.Respondent{}
		canon bytes.Buffer
	)
	err := store.Each(ctx, c.db, func(row store.Row) error {
		var id, field, response string
		if err := row.Scan(&id, &field, &response); err != nil {
			return err
		}
		canon.WriteString(id)
		canon.WriteByte(0x1f)
		canon.WriteString(field)
		canon.WriteByte(0x1f)
		canon.WriteString(response)
		canon.WriteByte('\n')

		if id == "" {
			return nil
		}
		r, ok := byID[id]
		if !ok {
			r = &survey.Respondent{ID: id, Answers: map[string]string{}}
			byID[id] = r
			order = append(order, id)
		}
		if f, err := c.reg.Field(field); err == nil && f.Has(response) {
			r.Answers[field] = response
		}
		return nil
	}, selectResponses)
	if err != nil {
		return Dataset{}, perr.Wrap(err, perr.ErrorCodeDB, "survey: query clickhouse")
	}

	out := make([]survey.Respondent, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return Dataset{Respondents: out, Version: store.ContentVersion("survey", canon.Bytes())}, nil
}

// Rows flattens respondents into Table rows, field names sorted per respondent
func Rows(rs []survey.Respondent) [][]any {
	var out [][]any
	for _, r := range rs {
		fields := make([]string, 0, len(r.Answers))
		for f := range r.Answers {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			out = append(out, []any{r.ID, f, r.Answers[f]})
		}
	}
	return out
}

// Seed replaces the contents of Table with rs, inserted in one batch
func Seed(ctx context.Context, db store.Clickhouse, rs []survey.Respondent) (int, error) {
	if err := db.Exec(ctx, CreateTableSQL); err != nil {
		return 0, perr.Wrap(err, perr.ErrorCodeDB, "survey: create table")
	}
	if err := db.Exec(ctx, TruncateTableSQL); err != nil {
		return 0, perr.Wrap(err, perr.ErrorCodeDB, "survey: truncate table")
	}
	rows := Rows(rs)
	if err := db.Insert(ctx, Table, rows); err != nil {
		return 0, perr.Wrap(err, perr.ErrorCodeDB, "survey: insert responses")
	}
	return len(rows), nil
}

