package store

// TransferRecord mirrors one row of a per-currency deposit/withdraw table.
// ProcessTime is the operator clock string (HH:MM:SS).
type TransferRecord struct {
	Date          string
	Line          string
	UserName      string
	Amount        string
	ProcessTime   string
	Completed     string
	OperatorGroup string
}
