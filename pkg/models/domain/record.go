package domain

import "time"

const (
	ProjectWealthOps    = "WEO"
	ProjectWealthNewLoc = "WNLE"
)

// Money-like field names carried on wealth records.
const (
	FieldRentalAmount     = "rental_amount"
	FieldSellingPrice     = "selling_price"
	FieldCommissionAmount = "commission_amount"
)

// Record is an immutable operational event owned by the record store.
// Money-like attributes stay as raw strings until a report parses them.
type Record struct {
	ID         string
	ProjectKey string
	CreatedAt  time.Time
	Labels     []string
	Fields     map[string]string
}

// Field returns the raw value of a money-like attribute, "" when absent.
func (r Record) Field(name string) string {
	if r.Fields == nil {
		return ""
	}
	return r.Fields[name]
}

// DateWindow is an inclusive start/end pair. Start <= End.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

func (w DateWindow) Valid() bool {
	return !w.Start.After(w.End)
}

// Month identifies a reporting month.
type Month struct {
	Year  int
	Month time.Month
}

func MonthOf(t time.Time) Month {
	t = t.UTC()
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) Previous() Month {
	t := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return MonthOf(t)
}

// Window returns the calendar-month window in UTC, end pinned to the last
// instant of the month's final day.
func (m Month) Window() DateWindow {
	start := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return DateWindow{Start: start, End: end}
}

func (m Month) String() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}
