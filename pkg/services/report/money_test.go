package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{name: "plain integer", raw: "200", want: 200},
		{name: "decimal", raw: "51.61", want: 51.61},
		{name: "thousands separators", raw: "1,200.50", want: 1200.50},
		{name: "multiple separators", raw: "12,345,678.9", want: 12345678.9},
		{name: "surrounding whitespace", raw: "  42 ", want: 42},
		{name: "negative", raw: "-10.5", want: -10.5},
		{name: "empty", raw: "", want: 0},
		{name: "garbage", raw: "abc", want: 0},
		{name: "partial number", raw: "12abc", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMoney(tt.raw))
		})
	}
}
