// Package numfmt formats counts and money for dashboard labels
package numfmt

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Thousands renders n with English digit grouping, e.g. 1,234,567
func Thousands(n int64) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// Dollars renders n as a whole-dollar amount, e.g. $1,234
func Dollars(n int64) string {
	return "$" + Thousands(n)
}

// SI shortens v with a K, M or B suffix and three significant digits
// values under a thousand are printed as-is
func SI(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1e9:
		return fmt.Sprintf("%.3gB", v/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%.3gM", v/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%.3gK", v/1e3)
	}
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// TwoDigit zero-pads a code to two digits
func TwoDigit(n int) string { return fmt.Sprintf("%02d", n) }

// Title title-cases an upper-case source description
func Title(s string) string {
	// casers carry state; one per call
	return cases.Title(language.English).String(s)
}
