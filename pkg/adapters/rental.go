package adapters

import (
	"github.com/yzxotic23-commits/nexsight/pkg/models/api"
	"github.com/yzxotic23-commits/nexsight/pkg/models/domain"
	"github.com/yzxotic23-commits/nexsight/pkg/models/store"
)

func MapRentalRowToDomain(row store.RentalRow) domain.RentalAccount {
	acc := domain.RentalAccount{
		ID:               row.ID,
		Supplier:         row.Supplier,
		BankAccountName:  row.BankAccountName,
		Status:           row.Status,
		Department:       row.Department,
		SellOff:          row.SellOff,
		Currency:         row.Currency,
		RentalCommission: row.RentalCommission,
		Commission:       row.Commission,
		Addition:         row.Addition,
		Remark:           row.Remark,
	}
	if row.StartDate.Valid {
		t := row.StartDate.Time.UTC()
		acc.StartDate = &t
	}
	return acc
}

func MapRentalBookDomainToApi(book domain.RentalBook) api.RentalBook {
	out := api.RentalBook{
		Currency: book.Currency,
		Accounts: []api.RentalAccount{},
		Summary: api.RentalSummary{
			TotalAccounts:  book.Summary.TotalAccounts,
			ActiveAccounts: book.Summary.ActiveAccounts,
			TotalPayment:   book.Summary.TotalPayment,
		},
	}

	for _, acc := range book.Accounts {
		apiAcc := api.RentalAccount{
			ID:               acc.ID,
			Supplier:         acc.Supplier,
			BankAccountName:  acc.BankAccountName,
			Status:           acc.Status,
			Department:       acc.Department,
			SellOff:          acc.SellOff,
			Currency:         acc.Currency,
			RentalCommission: acc.RentalCommission,
			Commission:       acc.Commission,
			Addition:         acc.Addition,
			Remark:           acc.Remark,
			PaymentTotal:     acc.PaymentTotal,
		}
		if acc.StartDate != nil {
			apiAcc.StartDate = acc.StartDate.Format("2006-01-02")
		}
		out.Accounts = append(out.Accounts, apiAcc)
	}

	return out
}
