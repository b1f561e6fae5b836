package store

import "time"

// IssueRecord mirrors one row of the issue tracker export table. Labels may
// arrive as a JSON array or a bare string; the store normalizes both to a
// slice. Money columns stay raw — they can carry thousands separators.
type IssueRecord struct {
	ID               string
	ProjectKey       string
	CreatedAt        time.Time
	Labels           []string
	RentalAmount     string
	SellingPrice     string
	CommissionAmount string
}
