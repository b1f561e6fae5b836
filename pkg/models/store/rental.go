package store

import "database/sql"

// RentalRow mirrors one row of the bank_price table.
type RentalRow struct {
	ID               string
	Supplier         string
	BankAccountName  string
	Status           string
	Department       string
	SellOff          string
	StartDate        sql.NullTime
	Currency         string
	RentalCommission string
	Commission       string
	Addition         string
	Remark           string
}
