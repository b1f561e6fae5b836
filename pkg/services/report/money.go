package report

import (
	"strconv"
	"strings"
)

// ParseMoney coerces a raw money-like value to a float64. Thousands
// separators are stripped before parsing; anything unparsable is 0.
// Total function, shared by the aggregation engine and the proration
// calculator so the coercion policy lives in exactly one place.
func ParseMoney(raw string) float64 {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
