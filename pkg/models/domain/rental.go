package domain

import "time"

// RentalAccount is one bank-account rental row with its computed payment.
type RentalAccount struct {
	ID              string
	Supplier        string
	BankAccountName string
	Status          string
	Department      string
	SellOff         string
	StartDate       *time.Time
	Currency        string

	// Raw money fields, parsed by the proration calculator.
	RentalCommission string
	Commission       string
	Addition         string
	Remark           string

	PaymentTotal float64
}

// RentalBook is the rental sheet for one market plus its summary line.
type RentalBook struct {
	Currency string
	Accounts []RentalAccount
	Summary  RentalSummary
}

// RentalSummary totals a market's rental book.
type RentalSummary struct {
	TotalAccounts  int
	ActiveAccounts int
	TotalPayment   float64
}
