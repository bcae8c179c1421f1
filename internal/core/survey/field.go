// Package survey holds the survey field registry and the cross-tab builder
// behind the stacked bar chart
package survey

import (
	"slices"
	"strings"
)

// FieldType separates respondent characteristics from survey questions
type FieldType string

const (
	// Attribute is a respondent characteristic (age, income, ...)
	Attribute FieldType = "attribute"
	// Variable is a survey question (steak preparation, gambling, ...)
	Variable FieldType = "variable"
)

// Valid reports whether t is a known field type
func (t FieldType) Valid() bool { return t == Attribute || t == Variable }

// Response is one allowed answer paired with its display color
type Response struct {
	Value string `yaml:"value" json:"value"`
	Color RGB    `yaml:"color" json:"color"`
}

// Field describes one survey column
// response order drives bar axis, stacking and legend order
type Field struct {
	Name      string     `yaml:"name"      json:"name"`
	Question  string     `yaml:"question"  json:"question"`
	Type      FieldType  `yaml:"type"      json:"type"`
	Responses []Response `yaml:"responses" json:"responses"`
}

// Series is one legend entry for the bar chart renderer
type Series struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Values returns the declared responses in order
func (f Field) Values() []string {
	out := make([]string, len(f.Responses))
	for i, r := range f.Responses {
		out[i] = r.Value
	}
	return out
}

// Index returns the position of value in the declared order or -1
func (f Field) Index(value string) int {
	for i, r := range f.Responses {
		if r.Value == value {
			return i
		}
	}
	return -1
}

// Has reports whether value is a declared response
func (f Field) Has(value string) bool { return f.Index(value) >= 0 }

// Header is the question text without line-break markup
func (f Field) Header() string {
	return strings.ReplaceAll(f.Question, "<br>", "")
}

// SeriesColorMap pairs each response with its color in declared order
// with alpha set every color is rendered as rgba with that alpha
func (f Field) SeriesColorMap(alpha *float64) []Series {
	out := make([]Series, 0, len(f.Responses))
	for _, r := range f.Responses {
		c := r.Color.String()
		if alpha != nil {
			c = r.Color.RGBA(*alpha)
		}
		out = append(out, Series{Name: r.Value, Color: c})
	}
	return out
}

func (f Field) clone() Field {
	f.Responses = slices.Clone(f.Responses)
	return f
}
