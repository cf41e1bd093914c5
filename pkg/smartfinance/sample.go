package smartfinance

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// sampleNamespace seeds deterministic IDs for the sample snapshot, so demo
// mode yields byte-identical data on every run for the same reference time.
var sampleNamespace = uuid.MustParse("8f6a1f7e-1f34-4c59-9f6d-2b7a60f2c0aa")

// SampleSnapshot builds a deterministic three-month demo snapshot anchored at
// now: three accounts, monthly salary and rent, two subscriptions, and a
// spread of day-to-day debits. The engine applies no live-vs-demo branching;
// this data flows through the same analysis as a live snapshot.
func SampleSnapshot(now time.Time) *Snapshot {
	checking := sampleID("account/checking")
	savings := sampleID("account/savings")
	credit := sampleID("account/credit")

	accounts := []Account{
		{ID: checking, InstitutionName: "First Demo Bank", AccountType: AccountDepository, Subtype: "checking", Balance: 4820.55, Currency: "USD"},
		{ID: savings, InstitutionName: "First Demo Bank", AccountType: AccountDepository, Subtype: "savings", Balance: 12400.00, Currency: "USD"},
		{ID: credit, InstitutionName: "Demo Card Services", AccountType: AccountCredit, Subtype: "credit card", Balance: -640.25, AvailableBalance: 4359.75, Currency: "USD"},
	}

	var txns []Transaction
	day := func(daysAgo int) Date { return DateOf(now.AddDate(0, 0, -daysAgo)) }

	add := func(daysAgo int, accountID string, amount float64, description, merchant, category string) {
		t := Transaction{
			ID:          sampleID(fmt.Sprintf("txn/%d/%s/%s", daysAgo, description, category)),
			AccountID:   accountID,
			Amount:      amount,
			Description: description,
			Merchant:    merchant,
			Category:    category,
			Date:        day(daysAgo),
			Type:        TransactionDebit,
		}
		if amount > 0 {
			t.Type = TransactionCredit
		}
		txns = append(txns, t)
	}

	// Monthly fixtures over the last three months.
	for m := 0; m < 3; m++ {
		base := m * 30
		add(base+1, checking, 4500, "ACME Corp Payroll", "ACME Corp", "Income")
		add(base+2, checking, -1500, "Oakview Apartments Rent", "Oakview Apartments", "Housing")
		add(base+4, credit, -15.99, "Netflix Subscription", "Netflix", "Entertainment")
		add(base+6, credit, -9.99, "Spotify Premium", "Spotify", "Entertainment")
		add(base+9, checking, -120.40, "City Utilities", "City Utilities", "Bills")
	}

	// Day-to-day spending, deterministic but uneven.
	for d := 2; d < 88; d += 3 {
		amount := -(25 + float64((d*7)%45))
		add(d, credit, amount, fmt.Sprintf("Fresh Mart #%03d", d), "Fresh Mart", "Groceries")
		if d%9 == 0 {
			add(d, credit, -(18 + float64(d%22)), fmt.Sprintf("Corner Bistro %02d", d), "Corner Bistro", "Dining")
		}
		if d%12 == 2 {
			add(d, checking, -(30 + float64(d%15)), "Metro Transit Pass", "Metro Transit", "Transport")
		}
	}

	return &Snapshot{Transactions: txns, Accounts: accounts}
}

func sampleID(name string) string {
	return uuid.NewSHA1(sampleNamespace, []byte(name)).String()
}
