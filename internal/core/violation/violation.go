// Package violation models one aggregate record per parking violation code
// and derives the dashboard view models from it
package violation

import (
	"encoding/json"
	"fmt"

	perr "figurefriday/internal/platform/errors"
)

const (
	// Hours is the number of heat map rows (hour of day)
	Hours = 24
	// Days is the number of heat map columns (day of week, Sunday first)
	Days = 7
)

// ErrMalformed marks a snapshot record that fails validation
var ErrMalformed = perr.New(perr.ErrorCodeValidation, "malformed violation snapshot")

// Violation is the precomputed summary for one violation code
// code 0 is the synthetic aggregate over all codes
type Violation struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
	Definition  string `json:"definition"`

	FineManhattan []int64 `json:"fine_amount_manhattan_96st_and_below"`
	FineOther     []int64 `json:"fine_amount_all_other_areas"`

	TotalCount     int64   `json:"total_count"`
	TotalFine      float64 `json:"total_fine"`
	TotalPenalty   float64 `json:"total_penalty"`
	TotalInterest  float64 `json:"total_interest"`
	TotalReduction float64 `json:"total_reduction"`
	TotalPayment   float64 `json:"total_payment"`
	TotalDue       float64 `json:"total_due"`

	PeriodCount map[string]int64   `json:"period_count"`
	PeriodFine  map[string]float64 `json:"period_fine"`
	Statuses    map[string]int64   `json:"statuses"`

	// kept for the snapshot format; no view reads them yet
	Agencies     map[string]int64 `json:"agencies"`
	States       map[string]int64 `json:"states"`
	LicenseTypes map[string]int64 `json:"license_types"`

	HourDow Grid `json:"hour_dow_counts"`
}

// Grid counts tickets by hour of day (row) and day of week (column)
type Grid [Hours][Days]int64

// UnmarshalJSON requires exactly 24 rows of 7 counts; null leaves the grid zeroed
func (g *Grid) UnmarshalJSON(b []byte) error {
	var raw [][]int64
	if err := json.Unmarshal(b, &raw); err != nil {
		return perr.Wrapf(ErrMalformed, perr.ErrorCodeValidation, "hour_dow_counts: %v", err)
	}
	if raw == nil {
		*g = Grid{}
		return nil
	}
	if len(raw) != Hours {
		return perr.Wrapf(ErrMalformed, perr.ErrorCodeValidation, "hour_dow_counts: %d rows, want %d", len(raw), Hours)
	}
	var out Grid
	for h, row := range raw {
		if len(row) != Days {
			return perr.Wrapf(ErrMalformed, perr.ErrorCodeValidation, "hour_dow_counts: row %d has %d columns, want %d", h, len(row), Days)
		}
		copy(out[h][:], row)
	}
	*g = out
	return nil
}

// Max returns the largest cell
func (g Grid) Max() int64 {
	var m int64
	for h := range g {
		for d := range g[h] {
			if g[h][d] > m {
				m = g[h][d]
			}
		}
	}
	return m
}

// Rows returns the grid as nested slices
func (g Grid) Rows() [][]int64 {
	out := make([][]int64, Hours)
	for h := range g {
		out[h] = append([]int64(nil), g[h][:]...)
	}
	return out
}

// Validate checks the counting invariants of a decoded record
func (v Violation) Validate() error {
	if v.TotalCount < 0 {
		return v.malformed("total_count is negative (%d)", v.TotalCount)
	}
	for h := range v.HourDow {
		for d, n := range v.HourDow[h] {
			if n < 0 {
				return v.malformed("hour_dow_counts[%d][%d] is negative (%d)", h, d, n)
			}
		}
	}
	hist := []struct {
		name string
		m    map[string]int64
	}{
		{"statuses", v.Statuses},
		{"period_count", v.PeriodCount},
		{"agencies", v.Agencies},
		{"states", v.States},
		{"license_types", v.LicenseTypes},
	}
	for _, h := range hist {
		for k, n := range h.m {
			if n < 0 {
				return v.malformed("%s[%q] is negative (%d)", h.name, k, n)
			}
		}
	}
	return nil
}

func (v Violation) malformed(format string, a ...any) error {
	return perr.Wrapf(ErrMalformed, perr.ErrorCodeValidation, "code %d: %s", v.Code, fmt.Sprintf(format, a...))
}
