package jsonprint

import (
	"strconv"
	"strings"
)

// formatNum renders f with 17-significant-digit precision, appending ".0"
// when the result would otherwise look like an integer (no '.', 'e', or
// 'E'), preserving the value's float-ness on re-parse.
func formatNum(f float64) string {
	s := strconv.FormatFloat(f, 'g', 17, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// formatInt renders an Int/ShortInt payload as a plain decimal integer.
func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}
