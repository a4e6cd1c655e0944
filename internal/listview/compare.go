package listview

import (
	"math"
	"strconv"
	"strings"
)

// Contains reports whether field contains value, ignoring case. An empty
// value matches every field.
func Contains(field, value string) bool {
	if value == "" {
		return true
	}
	return strings.Contains(strings.ToLower(field), strings.ToLower(value))
}

// parseFinite parses s as a finite number. NaN and infinities count as
// unparseable so they cannot break the ordering.
func parseFinite(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// NumericCompare orders a and b by their numeric value. Values that do not
// parse sort after every number and compare lexically among themselves.
func NumericCompare(a, b string) int {
	x, okA := parseFinite(a)
	y, okB := parseFinite(b)
	switch {
	case okA && okB:
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	case okA:
		return -1
	case okB:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// LexicalCompare orders a and b byte-wise.
func LexicalCompare(a, b string) int {
	return strings.Compare(a, b)
}

// ByNumber builds a comparator over a numeric-like cell.
func ByNumber[R any](value func(R) string) func(a, b R) int {
	return func(a, b R) int { return NumericCompare(value(a), value(b)) }
}

// ByText builds a lexicographic comparator over a cell.
func ByText[R any](value func(R) string) func(a, b R) int {
	return func(a, b R) int { return LexicalCompare(value(a), value(b)) }
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
