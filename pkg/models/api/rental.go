package api

type RentalAccount struct {
	ID               string  `json:"id"`
	Supplier         string  `json:"supplier"`
	BankAccountName  string  `json:"bankAccountName"`
	Status           string  `json:"status"`
	Department       string  `json:"department"`
	SellOff          string  `json:"sellOff"`
	StartDate        string  `json:"startDate,omitempty"`
	Currency         string  `json:"currency"`
	RentalCommission string  `json:"rentalCommission"`
	Commission       string  `json:"commission"`
	Addition         string  `json:"addition"`
	Remark           string  `json:"remark,omitempty"`
	PaymentTotal     float64 `json:"paymentTotal"`
}

type RentalSummary struct {
	TotalAccounts  int     `json:"totalAccounts"`
	ActiveAccounts int     `json:"activeAccounts"`
	TotalPayment   float64 `json:"totalPayment"`
}

type RentalBook struct {
	Currency string          `json:"currency"`
	Accounts []RentalAccount `json:"accounts"`
	Summary  RentalSummary   `json:"summary"`
}
