package provider

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/smartfinance/smartfinance-go/pkg/smartfinance"
)

// The provider serializes monetary amounts as decimal strings. They are
// parsed exactly and rounded to cents before conversion to float64, so a
// sloppy upstream serializer cannot leak sub-cent noise into the analytics.

// wireTransaction is the provider's transaction shape.
type wireTransaction struct {
	ID          string            `json:"id"`
	AccountID   string            `json:"accountId"`
	Amount      string            `json:"amount"`
	Description string            `json:"description"`
	Merchant    string            `json:"merchant,omitempty"`
	Category    string            `json:"category,omitempty"`
	Subcategory string            `json:"subcategory,omitempty"`
	Date        smartfinance.Date `json:"date"`
	Pending     bool              `json:"pending"`
}

func (w *wireTransaction) toTransaction() (smartfinance.Transaction, error) {
	amount, err := parseAmount(w.Amount)
	if err != nil {
		return smartfinance.Transaction{}, err
	}

	t := smartfinance.Transaction{
		ID:          w.ID,
		AccountID:   w.AccountID,
		Amount:      amount,
		Description: w.Description,
		Merchant:    w.Merchant,
		Category:    w.Category,
		Subcategory: w.Subcategory,
		Date:        w.Date,
		Type:        smartfinance.TransactionDebit,
	}
	if amount > 0 {
		t.Type = smartfinance.TransactionCredit
	}
	return t, nil
}

// wireAccount is the provider's account shape.
type wireAccount struct {
	ID               string `json:"id"`
	InstitutionName  string `json:"institutionName"`
	AccountType      string `json:"accountType"`
	Subtype          string `json:"subtype,omitempty"`
	Balance          string `json:"balance"`
	AvailableBalance string `json:"availableBalance,omitempty"`
	Currency         string `json:"currency"`
}

func (w *wireAccount) toAccount() (smartfinance.Account, error) {
	balance, err := parseAmount(w.Balance)
	if err != nil {
		return smartfinance.Account{}, err
	}

	// AvailableBalance is optional; absent means 0.
	var available float64
	if w.AvailableBalance != "" {
		available, err = parseAmount(w.AvailableBalance)
		if err != nil {
			return smartfinance.Account{}, err
		}
	}

	currency := w.Currency
	if currency == "" {
		currency = "USD"
	}

	return smartfinance.Account{
		ID:               w.ID,
		InstitutionName:  w.InstitutionName,
		AccountType:      smartfinance.AccountType(w.AccountType),
		Subtype:          w.Subtype,
		Balance:          balance,
		AvailableBalance: available,
		Currency:         currency,
	}, nil
}

func parseAmount(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid amount %q", s)
	}
	return d.Round(2).InexactFloat64(), nil
}
