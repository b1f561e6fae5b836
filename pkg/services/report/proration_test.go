package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePayment(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		input ProrationInput
		want  float64
		delta float64
	}{
		{
			name: "sell-off skips proration",
			input: ProrationInput{
				SellOff:          "OFF",
				StartDate:        "2026-01-16",
				RentalCommission: "100",
				Commission:       "50",
				Addition:         "10",
			},
			want: 160,
		},
		{
			name: "sell-off is case-insensitive and trimmed",
			input: ProrationInput{
				SellOff:          " off ",
				RentalCommission: "100",
				Commission:       "50",
				Addition:         "10",
			},
			want: 160,
		},
		{
			name: "flat-fee rental tier skips proration",
			input: ProrationInput{
				StartDate:        "2026-01-15",
				RentalCommission: "200",
				Commission:       "38",
				Addition:         "0",
			},
			want: 238,
		},
		{
			name: "missing start date falls back to flat sum",
			input: ProrationInput{
				RentalCommission: "120",
				Commission:       "40",
				Addition:         "5",
			},
			want: 165,
		},
		{
			name: "unparsable start date falls back to flat sum",
			input: ProrationInput{
				StartDate:        "16/01/2026",
				RentalCommission: "120",
				Commission:       "40",
				Addition:         "5",
			},
			want: 165,
		},
		{
			name: "prorated rental with fixed commission",
			input: ProrationInput{
				StartDate:        "2026-01-16",
				RentalCommission: "100",
				Commission:       "38",
				Addition:         "0",
			},
			// 16 of 31 days remain: 100*16/31 + 38
			want:  100.0*16.0/31.0 + 38.0,
			delta: 1e-9,
		},
		{
			name: "prorated rental and commission",
			input: ProrationInput{
				StartDate:        "2026-02-15",
				RentalCommission: "280",
				Commission:       "56",
				Addition:         "14",
			},
			// February 2026 has 28 days, 14 remain.
			want:  (280.0+14.0)*14.0/28.0 + 56.0*14.0/28.0,
			delta: 1e-9,
		},
		{
			name: "first-of-month start pays the full month",
			input: ProrationInput{
				StartDate:        "2026-01-01",
				RentalCommission: "100",
				Commission:       "40",
				Addition:         "10",
			},
			want:  150,
			delta: 1e-9,
		},
		{
			name: "thousands separators in money fields",
			input: ProrationInput{
				SellOff:          "OFF",
				RentalCommission: "1,200.50",
				Commission:       "300",
				Addition:         "0",
			},
			want: 1500.50,
		},
		{
			name: "unparsable money fields coerce to zero",
			input: ProrationInput{
				SellOff:          "OFF",
				RentalCommission: "n/a",
				Commission:       "50",
				Addition:         "",
			},
			want: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePayment(ctx, tt.input)
			if tt.delta > 0 {
				assert.InDelta(t, tt.want, got, tt.delta)
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCalculatePaymentJanuaryExample(t *testing.T) {
	// January 2026 has 31 days; a start on the 16th leaves 16 remaining
	// days, so the 100 rental prorates to about 51.61 while the fixed 38
	// commission stays whole.
	got := CalculatePayment(context.Background(), ProrationInput{
		StartDate:        "2026-01-16",
		RentalCommission: "100",
		Commission:       "38",
		Addition:         "0",
	})
	assert.InDelta(t, 89.61, got, 0.01)
}
