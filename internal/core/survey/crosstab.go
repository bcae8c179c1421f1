package survey

import (
	"bytes"
	"encoding/json"
	"fmt"

	perr "figurefriday/internal/platform/errors"
)

const (
	// AllRow labels the synthetic totals row
	AllRow = "All"
	// IndexKey is the record key holding the row label
	IndexKey = "index"
)

// ErrInvalidSelection is returned when the two fields are not one attribute and one variable
var ErrInvalidSelection = perr.New(perr.ErrorCodeInvalidArgument, "invalid selection")

// Respondent is one survey row keyed by field name
// a missing key or an out-of-set value counts as no answer
type Respondent struct {
	ID      string            `json:"id"`
	Answers map[string]string `json:"answers"`
}

// CrossTab is a dense count table of x responses (columns) by y responses (rows)
type CrossTab struct {
	X       string   `json:"x"`
	Y       string   `json:"y"`
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Row is one table row with a count per column
type Row struct {
	Label  string  `json:"label"`
	Counts []int64 `json:"counts"`
}

// Record is a row flattened for the bar chart renderer:
// {"index": label, <column>: count, ...} in column order
type Record struct {
	Index   string
	Columns []string
	Counts  []int64
}

// MarshalJSON writes the record with keys in column order
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := writePair(&buf, IndexKey, r.Index); err != nil {
		return nil, err
	}
	for i, c := range r.Columns {
		buf.WriteByte(',')
		if err := writePair(&buf, c, r.Counts[i]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a record back keeping the column order of the input
func (r *Record) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return fmt.Errorf("survey: record must be a JSON object")
	}
	*r = Record{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		if key == IndexKey {
			if err := dec.Decode(&r.Index); err != nil {
				return fmt.Errorf("survey: record index: %w", err)
			}
			continue
		}
		var n int64
		if err := dec.Decode(&n); err != nil {
			return fmt.Errorf("survey: record count %q: %w", key, err)
		}
		r.Columns = append(r.Columns, key)
		r.Counts = append(r.Counts, n)
	}
	_, err := dec.Token()
	return err
}

func writePair(buf *bytes.Buffer, k string, v any) error {
	kb, err := json.Marshal(k)
	if err != nil {
		return err
	}
	vb, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(kb)
	buf.WriteByte(':')
	buf.Write(vb)
	return nil
}

// Records flattens the table in row order, All last
func (t CrossTab) Records() []Record {
	out := make([]Record, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = Record{Index: r.Label, Columns: t.Columns, Counts: r.Counts}
	}
	return out
}

// Cell returns the count at (row, column)
func (t CrossTab) Cell(row, col string) (int64, bool) {
	ci := -1
	for i, c := range t.Columns {
		if c == col {
			ci = i
			break
		}
	}
	if ci < 0 {
		return 0, false
	}
	for _, r := range t.Rows {
		if r.Label == row {
			return r.Counts[ci], true
		}
	}
	return 0, false
}

// Total is the number of respondents counted in the table
func (t CrossTab) Total() int64 {
	if len(t.Rows) == 0 {
		return 0
	}
	var n int64
	for _, c := range t.Rows[len(t.Rows)-1].Counts {
		n += c
	}
	return n
}

// BuildCrossTab counts respondents by an attribute and a variable
// the attribute is on the x axis unless transpose is set
// it also returns the cumulative share of each column boundary, last (1.0) omitted
func BuildCrossTab(records []Respondent, first, second Field, transpose bool) (CrossTab, []float64, error) {
	if first.Name == second.Name {
		return CrossTab{}, nil, perr.Wrapf(ErrInvalidSelection, perr.ErrorCodeInvalidArgument,
			"attribute and variable must differ (both %q)", first.Name)
	}

	var attr, vrb Field
	switch {
	case first.Type == Attribute && second.Type == Variable:
		attr, vrb = first, second
	case first.Type == Variable && second.Type == Attribute:
		attr, vrb = second, first
	default:
		return CrossTab{}, nil, perr.Wrapf(ErrInvalidSelection, perr.ErrorCodeInvalidArgument,
			"need one attribute and one variable, got %s %q and %s %q", first.Type, first.Name, second.Type, second.Name)
	}

	x, y := attr, vrb
	if transpose {
		x, y = vrb, attr
	}

	tab := CrossTab{X: x.Name, Y: y.Name}
	if len(x.Responses) == 0 || len(y.Responses) == 0 {
		return tab, []float64{}, nil
	}

	counts := make([][]int64, len(y.Responses))
	for i := range counts {
		counts[i] = make([]int64, len(x.Responses))
	}
	for _, rec := range records {
		xi := x.Index(rec.Answers[x.Name])
		yi := y.Index(rec.Answers[y.Name])
		if xi < 0 || yi < 0 {
			continue
		}
		counts[yi][xi]++
	}

	all := make([]int64, len(x.Responses))
	tab.Columns = x.Values()
	tab.Rows = make([]Row, 0, len(y.Responses)+1)
	for i, resp := range y.Responses {
		for j, c := range counts[i] {
			all[j] += c
		}
		tab.Rows = append(tab.Rows, Row{Label: resp.Value, Counts: counts[i]})
	}
	tab.Rows = append(tab.Rows, Row{Label: AllRow, Counts: all})

	return tab, breakpoints(all), nil
}

// breakpoints turns column totals into cumulative fractions without the final 1.0
func breakpoints(all []int64) []float64 {
	out := make([]float64, len(all)-1)
	var total int64
	for _, c := range all {
		total += c
	}
	if total == 0 {
		return out
	}
	var cum int64
	for i := range out {
		cum += all[i]
		out[i] = float64(cum) / float64(total)
	}
	return out
}
