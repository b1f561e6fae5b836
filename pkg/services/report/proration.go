package report

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ProrationInput carries the raw attributes of one rental account. Money
// fields are raw strings and may carry thousands separators; StartDate is
// a calendar date string (YYYY-MM-DD).
type ProrationInput struct {
	SellOff          string
	StartDate        string
	RentalCommission string
	Commission       string
	Addition         string
}

const (
	// Accounts rented at exactly 200 pay the full month regardless of
	// start date.
	flatRentalCommission = 200

	// A commission of exactly 38 is a fixed fee, never prorated.
	flatCommission = 38
)

// CalculatePayment computes the time-weighted payment for a rental
// account. Total function: every degraded case (sell-off, flat-fee tier,
// missing or unparsable start date) returns the plain sum of the three
// components, and date trouble is logged via the context logger rather
// than surfaced as an error.
func CalculatePayment(ctx context.Context, in ProrationInput) float64 {
	rental := ParseMoney(in.RentalCommission)
	commission := ParseMoney(in.Commission)
	addition := ParseMoney(in.Addition)
	flat := rental + commission + addition

	if strings.EqualFold(strings.TrimSpace(in.SellOff), "OFF") {
		return flat
	}
	if rental == flatRentalCommission {
		return flat
	}

	start, ok := parseStartDate(in.StartDate)
	if !ok {
		if strings.TrimSpace(in.StartDate) != "" {
			zerolog.Ctx(ctx).Warn().
				Str("start_date", in.StartDate).
				Msg("unparsable rental start date, payment falls back to flat sum")
		}
		return flat
	}

	daysInMonth := time.Date(start.Year(), start.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
	// The start day itself counts as a full remaining day.
	daysRemaining := daysInMonth - start.Day() + 1

	prorated := (rental + addition) * float64(daysRemaining) / float64(daysInMonth)
	if commission == flatCommission {
		return prorated + commission
	}
	return prorated + commission*float64(daysRemaining)/float64(daysInMonth)
}

func parseStartDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.UTC); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}
