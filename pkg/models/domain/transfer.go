package domain

// TransferKind discriminates the two money-movement record families.
type TransferKind string

const (
	TransferDeposit  TransferKind = "deposit"
	TransferWithdraw TransferKind = "withdraw"
)

func (k TransferKind) Valid() bool {
	return k == TransferDeposit || k == TransferWithdraw
}

// Markets served by the dashboard. CurrencyAll is the combined view.
const (
	CurrencyMYR = "MYR"
	CurrencySGD = "SGD"
	CurrencyUSC = "USC"
	CurrencyAll = "ALL"
)

// Transactions slower than this count as overdue.
const OverdueThresholdSeconds = 300

// TransferChart groups the per-day series behind the transfer dashboard.
type TransferChart struct {
	OverdueTrans      DailySeries
	AvgProcessingTime DailySeries
	TransactionVolume DailySeries
}

// SlowTransaction is one transaction above the overdue threshold.
type SlowTransaction struct {
	Brand          string
	CustomerName   string
	Amount         float64
	ProcessingTime float64 // seconds
	Completed      string
	Date           string
	OperatorGroup  string
}

type SlowTransactionSummary struct {
	TotalSlowTransaction int
	AvgProcessingTime    float64
	Brand                string
}

// BrandStats compares one brand's transactions within a report window.
type BrandStats struct {
	Brand            string
	AvgTime          float64
	TotalTransaction int
	TotalOverdue     int
}

// TransferReport is the per-currency (or combined) transfer dashboard view.
type TransferReport struct {
	Currency string
	Kind     TransferKind

	TotalTransaction  int
	TotalAmount       float64
	AvgProcessingTime float64

	DailyCounts DailySeries
	Chart       TransferChart

	SlowTransactions       []SlowTransaction
	SlowTransactionSummary SlowTransactionSummary
	BrandComparison        []BrandStats
}
