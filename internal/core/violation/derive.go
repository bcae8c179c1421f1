package violation

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"figurefriday/internal/core/numfmt"
)

// Area labels for the fine summary
const (
	AreaAll       = "all areas"
	AreaManhattan = "Manhattan ≤ 96 Street"
	AreaOther     = "all other areas"
)

// Waterfall colors: one for amounts that raise what is owed, one for amounts that lower it
const (
	ColorOwedUp   = "#07bad5"
	ColorOwedDown = "#D4AE24"
)

// OtherOutcomes collects status codes the classification table does not know
const OtherOutcomes = "other outcomes"

// Heat map axis labels
var (
	DayLabels  = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	HourLabels = []string{
		"12 AM", "1 AM", "2 AM", "3 AM", "4 AM", "5 AM",
		"6 AM", "7 AM", "8 AM", "9 AM", "10 AM", "11 AM",
		"12 PM", "1 PM", "2 PM", "3 PM", "4 PM", "5 PM",
		"6 PM", "7 PM", "8 PM", "9 PM", "10 PM", "11 PM",
	}
)

// outcome is a canonical hearing group and its donut color
type outcome struct {
	name  string
	color string
}

var outcomes = []outcome{
	{"no contest", "#D6B527dd"},
	{"guilty", "#B05C14dd"},
	{"guilty reduced", "#7C2C20dd"},
	{"administrative review", "#3F181Edd"},
	{"not guilty", "#07bad5dd"},
	{"appeal outcome", "#035E86dd"},
	{"pending or adjourned", "#024764dd"},
}

const otherOutcomesColor = "#828282dd"

var hearingGroups = map[string]string{
	"none":                          "no contest",
	"HEARING HELD-GUILTY":           "guilty",
	"HEARING HELD-REINSTATEMENT":    "guilty",
	"HEARING HELD-GUILTY REDUCTION": "guilty reduced",
	"ADMIN REDUCTION":               "guilty reduced",
	"HEARING HELD-NOT GUILTY":       "not guilty",
	"APPEAL AFFIRMED":               "appeal outcome",
	"APPEAL REVERSED":               "appeal outcome",
	"APPEAL MODIFIED":               "appeal outcome",
	"APPEAL ABANDONED":              "appeal outcome",
	"ADMIN CLAIM GRANTED":           "administrative review",
	"ADMIN CLAIM DENIED":            "administrative review",
	"HEARING ADJOURNMENT":           "pending or adjourned",
	"HEARING PENDING":               "pending or adjourned",
}

// HearingGroup maps a raw status code to its canonical group
func HearingGroup(status string) string {
	if g, ok := hearingGroups[status]; ok {
		return g
	}
	return OtherOutcomes
}

// LabeledValue is a display label with a preformatted value
type LabeledValue struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// WaterfallBar is one step of the fine-to-due waterfall
type WaterfallBar struct {
	Item       string  `json:"item"`
	Total      float64 `json:"total"`
	Color      string  `json:"color"`
	Standalone bool    `json:"standalone,omitempty"`
}

// Slice is one donut segment
type Slice struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
	Color string `json:"color"`
}

// HeatMap is the hour by weekday grid with its color domain
type HeatMap struct {
	X     []string  `json:"x"`
	Y     []string  `json:"y"`
	Z     [][]int64 `json:"z"`
	ZMin  int64     `json:"zmin"`
	ZMax  int64     `json:"zmax"`
	TickX []string  `json:"tick_x"`
	TickY []string  `json:"tick_y"`
}

// Label names the record in the selector
func (v Violation) Label() string {
	if v.Code == 0 {
		return "all codes"
	}
	return "code no. " + numfmt.TwoDigit(v.Code)
}

// Visible reports whether the record has any tickets to chart
func (v Violation) Visible() bool { return v.TotalCount != 0 }

// FineRangeSummary renders the fine schedule per area tier
// identical schedules collapse into a single "all areas" entry
func (v Violation) FineRangeSummary() []LabeledValue {
	if slices.Equal(v.FineManhattan, v.FineOther) {
		return []LabeledValue{{Label: AreaAll, Value: fineRange(v.FineManhattan)}}
	}
	return []LabeledValue{
		{Label: AreaManhattan, Value: fineRange(v.FineManhattan)},
		{Label: AreaOther, Value: fineRange(v.FineOther)},
	}
}

func fineRange(amounts []int64) string {
	switch len(amounts) {
	case 0:
		return "N/A"
	case 1:
		return "$" + amount(amounts[0])
	default:
		return "$" + amount(amounts[0]) + "-" + amount(amounts[len(amounts)-1])
	}
}

func amount(n int64) string { return strconv.FormatInt(n, 10) }

// TotalsSummary renders tickets issued, amount paid and amount due
func (v Violation) TotalsSummary() []LabeledValue {
	return []LabeledValue{
		{Label: "issued", Value: numfmt.Thousands(v.TotalCount)},
		{Label: "paid", Value: numfmt.Dollars(whole(v.TotalPayment))},
		{Label: "due", Value: numfmt.Dollars(whole(v.TotalDue))},
	}
}

func whole(f float64) int64 { return int64(math.RoundToEven(f)) }

// WaterfallSeries walks from the fine total to the amount due
// reductions and payments are negative; due is an absolute bar
func (v Violation) WaterfallSeries() []WaterfallBar {
	return []WaterfallBar{
		{Item: "fine", Total: v.TotalFine, Color: ColorOwedUp},
		{Item: "penalty", Total: v.TotalPenalty, Color: ColorOwedUp},
		{Item: "interest", Total: v.TotalInterest, Color: ColorOwedUp},
		{Item: "reduction", Total: -v.TotalReduction, Color: ColorOwedDown},
		{Item: "payment", Total: -v.TotalPayment, Color: ColorOwedDown},
		{Item: "due", Total: v.TotalDue, Color: ColorOwedUp, Standalone: true},
	}
}

// HearingOutcomeSeries groups status counts into the canonical outcomes in fixed order
// unknown statuses are summed into a trailing "other outcomes" slice when non-zero
func (v Violation) HearingOutcomeSeries() []Slice {
	sums := make(map[string]int64, len(outcomes)+1)
	for status, n := range v.Statuses {
		sums[HearingGroup(status)] += n
	}
	out := make([]Slice, 0, len(outcomes)+1)
	for _, o := range outcomes {
		out = append(out, Slice{Name: o.name, Value: sums[o.name], Color: o.color})
	}
	if n := sums[OtherOutcomes]; n != 0 {
		out = append(out, Slice{Name: OtherOutcomes, Value: n, Color: otherOutcomesColor})
	}
	return out
}

// HeatMapGrid returns the weekday by hour counts with a color domain of [0, max]
// the domain never collapses to zero width
func (v Violation) HeatMapGrid() HeatMap {
	zmax := v.HourDow.Max()
	if zmax < 1 {
		zmax = 1
	}
	return HeatMap{
		X:     slices.Clone(DayLabels),
		Y:     slices.Clone(HourLabels),
		Z:     v.HourDow.Rows(),
		ZMin:  0,
		ZMax:  zmax,
		TickX: dayTicks(),
		TickY: hourTicks(),
	}
}

// dayTicks are the compact axis labels: su m tu w th f sa
func dayTicks() []string {
	out := make([]string, len(DayLabels))
	for i, d := range DayLabels {
		n := 1
		if d[0] == 'S' || d[0] == 'T' {
			n = 2
		}
		out[i] = strings.ToLower(d[:n])
	}
	return out
}

func hourTicks() []string {
	out := make([]string, len(HourLabels))
	for i, h := range HourLabels {
		out[i] = strings.ToLower(h)
	}
	return out
}

// String is a short debugging form
func (v Violation) String() string {
	return fmt.Sprintf("Violation(code=%d, description=%q)", v.Code, v.Description)
}
