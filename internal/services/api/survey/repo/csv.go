package repo

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"figurefriday/internal/core/survey"
	perr "figurefriday/internal/platform/errors"
	"figurefriday/internal/platform/store"
)

// IDColumn is the respondent id header in the survey export
const IDColumn = "RespondentID"

// CSV reads the survey export from disk
type CSV struct {
	path string
	reg  *survey.Registry
}

// NewCSV returns a repo reading path
func NewCSV(path string, reg *survey.Registry) *CSV {
	return &CSV{path: path, reg: reg}
}

// Load reads and parses the whole file; the version hashes the raw bytes
func (c *CSV) Load(ctx context.Context) (Dataset, error) {
	if err := ctx.Err(); err != nil {
		return Dataset{}, err
	}
	b, err := os.ReadFile(c.path)
	if err != nil {
		return Dataset{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "survey: read %s", c.path)
	}
	rs, err := ParseCSV(bytes.NewReader(b), c.reg)
	if err != nil {
		return Dataset{}, err
	}
	return Dataset{Respondents: rs, Version: store.ContentVersion("survey", b)}, nil
}

// ParseCSV maps question headers to registry fields and reads one respondent per row.
// unknown columns are ignored, rows without an id are skipped and out-of-set
// answers are left out of the respondent's map
func ParseCSV(r io.Reader, reg *survey.Registry) ([]survey.Respondent, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, perr.New(perr.ErrorCodeValidation, "survey: empty csv")
	}
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeValidation, "survey: read csv header")
	}

	idCol := -1
	cols := make(map[int]survey.Field, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if h == IDColumn {
			idCol = i
			continue
		}
		if f, ok := reg.ByQuestion(h); ok {
			cols[i] = f
		}
	}
	if idCol < 0 {
		return nil, perr.Newf(perr.ErrorCodeValidation, "survey: csv has no %s column", IDColumn)
	}

	var out []survey.Respondent
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeValidation, "survey: csv line %d", line)
		}
		if idCol >= len(rec) || strings.TrimSpace(rec[idCol]) == "" {
			continue
		}
		resp := survey.Respondent{ID: strings.TrimSpace(rec[idCol]), Answers: make(map[string]string, len(cols))}
		for i, f := range cols {
			if i >= len(rec) {
				continue
			}
			if v := strings.TrimSpace(rec[i]); f.Has(v) {
				resp.Answers[f.Name] = v
			}
		}
		out = append(out, resp)
	}
	return out, nil
}
