package api

type TransferChart struct {
	OverdueTrans      map[string]float64 `json:"overdueTrans"`
	AvgProcessingTime map[string]float64 `json:"avgProcessingTime"`
	TransactionVolume map[string]float64 `json:"transactionVolume"`
}

type SlowTransaction struct {
	Brand          string  `json:"brand"`
	CustomerName   string  `json:"customerName"`
	Amount         float64 `json:"amount"`
	ProcessingTime float64 `json:"processingTime"`
	Completed      string  `json:"completed"`
	Date           string  `json:"date"`
	OperatorGroup  string  `json:"operatorGroup"`
}

type SlowTransactionSummary struct {
	TotalSlowTransaction int     `json:"totalSlowTransaction"`
	AvgProcessingTime    float64 `json:"avgProcessingTime"`
	Brand                string  `json:"brand"`
}

type BrandStats struct {
	Brand            string  `json:"brand"`
	AvgTime          float64 `json:"avgTime"`
	TotalTransaction int     `json:"totalTransaction"`
	TotalOverdue     int     `json:"totalOverdue"`
}

// TransferReport is the JSON shape of the deposit/withdraw dashboard view.
type TransferReport struct {
	Currency               string                 `json:"currency"`
	TotalTransaction       int                    `json:"totalTransaction"`
	TotalAmount            float64                `json:"totalAmount"`
	AvgProcessingTime      float64                `json:"avgProcessingTime"`
	DailyCounts            map[string]float64     `json:"dailyCounts"`
	ChartData              TransferChart          `json:"chartData"`
	SlowTransactions       []SlowTransaction      `json:"slowTransactions"`
	SlowTransactionSummary SlowTransactionSummary `json:"slowTransactionSummary"`
	BrandComparison        []BrandStats           `json:"brandComparison"`
}
