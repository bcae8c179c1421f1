// Package domain holds the violations dashboard transport types
package domain

import "figurefriday/internal/core/violation"

// MenuItem is one selector entry
type MenuItem struct {
	Index       int    `json:"index"       example:"1"`
	Code        int    `json:"code"        example:"5"`
	CodeText    string `json:"code_text"   example:"05"`
	Description string `json:"description" example:"No Parking-Street Cleaning"`
	Issued      string `json:"issued"      example:"1,234,567"`
}

// LegendEntry is a donut slice with its SI formatted count
type LegendEntry struct {
	Name  string `json:"name"  example:"guilty"`
	Value string `json:"value" example:"12.3K"`
	Color string `json:"color" example:"#B05C14dd"`
}

// View is everything the dashboard renders for one record
type View struct {
	Index       int                      `json:"index"`
	Code        int                      `json:"code"`
	Label       string                   `json:"label" example:"code no. 21"`
	Description string                   `json:"description"`
	Definition  string                   `json:"definition"`
	Fines       []violation.LabeledValue `json:"fines"`
	Totals      []violation.LabeledValue `json:"totals"`
	Waterfall   []violation.WaterfallBar `json:"waterfall"`
	Hearing     []violation.Slice        `json:"hearing"`
	Legend      []LegendEntry            `json:"legend"`
	HeatMap     violation.HeatMap        `json:"heat_map"`
	// Visible is false for records with no tickets; charts are hidden
	Visible bool   `json:"visible"`
	Version string `json:"version"`
}

// SelectRequest moves the selector from Index
type SelectRequest struct {
	Index  int    `json:"index"`
	Action string `json:"action" validate:"required,oneof=jump next prev" example:"next"`
	Target int    `json:"target"`
}

// Selection is the client held selector state
type Selection struct {
	Index int `json:"index" example:"0"`
}
