// Package domain holds DTOs for the survey dashboard http and service contracts
package domain

import "figurefriday/internal/core/survey"

// Selection is the dashboard state the client sends back on every change
type Selection struct {
	Attribute string `json:"attribute" validate:"notblank,max=64" example:"Age"`
	Variable  string `json:"variable" validate:"notblank,max=64" example:"Steak Preparation"`
	Transpose bool   `json:"transpose" example:"true"`
	ShowRef   bool   `json:"show_ref" example:"false"`
}

// ResponseOption is one dropdown answer with its color
type ResponseOption struct {
	Value string `json:"value" example:"Medium rare"`
	Color string `json:"color" example:"rgb(229, 56, 59)"`
}

// FieldInfo describes one selectable survey column
type FieldInfo struct {
	Name      string           `json:"name" example:"Age"`
	Question  string           `json:"question" example:"Age"`
	Type      string           `json:"type" example:"attribute"`
	Responses []ResponseOption `json:"responses"`
}

// Fields feeds the attribute and variable dropdowns
type Fields struct {
	Attributes []string    `json:"attributes" example:"Age,Education,Gender"`
	Variables  []string    `json:"variables" example:"Alcohol,Cheated,Steak Preparation"`
	Fields     []FieldInfo `json:"fields"`
}

// ReferenceLine marks a cumulative share on the percent axis
type ReferenceLine struct {
	X     float64 `json:"x" example:"0.25"`
	Color string  `json:"color" example:"rgba(255, 255, 255, 0.85)"`
}

// BarChart is the full payload for the 100% stacked bar chart
type BarChart struct {
	Title          string          `json:"title" example:"How do you like your steak prepared?"`
	Subtitle       string          `json:"subtitle" example:"Broken down by respondent's age"`
	DataKey        string          `json:"data_key" example:"index"`
	Data           []survey.Record `json:"data" swaggertype:"array,object"`
	Series         []survey.Series `json:"series"`
	ReferenceLines []ReferenceLine `json:"reference_lines"`
	Version        string          `json:"version" example:"6f1c9a52-3a0d-5c1e-9d1b-1c1f0c8e2a10"`
}

// CrossTab is the raw count table with its cumulative fractions
type CrossTab struct {
	Table     survey.CrossTab `json:"table"`
	Fractions []float64       `json:"fractions"`
	Total     int64           `json:"total" example:"430"`
	Version   string          `json:"version" example:"6f1c9a52-3a0d-5c1e-9d1b-1c1f0c8e2a10"`
}
