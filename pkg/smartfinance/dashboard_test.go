package smartfinance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeDashboard_BalancesAndCredit(t *testing.T) {
	accounts := []Account{
		{AccountType: AccountCredit, Balance: -500, AvailableBalance: 1500},
		{AccountType: AccountDepository, Balance: 3000},
	}

	summary := SummarizeDashboard(nil, accounts, patternNow)

	// Credit accounts contribute available balance, not the owed balance.
	assert.Equal(t, 4500.0, summary.TotalBalance)
	assert.Equal(t, 1500.0, summary.AvailableCredit)

	// And at 25% utilization no credit insight fires either.
	assert.Empty(t, AnalyzeCreditUtilization(accounts))
}

func TestSummarizeDashboard_MonthOverMonth(t *testing.T) {
	txns := []Transaction{
		txn(4000, daysAgo(10), "Income"),  // current month
		txn(-1200, daysAgo(5), "Rent"),    // current month
		txn(2000, daysAgo(40), "Income"),  // prior month
		txn(-1000, daysAgo(35), "Rent"),   // prior month
		txn(-999, daysAgo(80), "Ancient"), // two months back, ignored
	}

	summary := SummarizeDashboard(txns, nil, patternNow)

	assert.Equal(t, 4000.0, summary.MonthlyIncome)
	assert.Equal(t, 1200.0, summary.MonthlyExpenses)
	assert.InDelta(t, 100.0, summary.IncomeChangePercent, 1e-9)
	assert.InDelta(t, 20.0, summary.ExpenseChangePercent, 1e-9)
}

func TestSummarizeDashboard_ZeroPriorMonth(t *testing.T) {
	txns := []Transaction{
		txn(4000, daysAgo(10), "Income"),
	}

	summary := SummarizeDashboard(txns, nil, patternNow)
	assert.Equal(t, 0.0, summary.IncomeChangePercent)
	assert.Equal(t, 0.0, summary.ExpenseChangePercent)
}

func TestSummarizeDashboard_Empty(t *testing.T) {
	summary := SummarizeDashboard(nil, nil, patternNow)
	assert.Equal(t, DashboardSummary{}, summary)
}

func TestBreakDownByCategory(t *testing.T) {
	txns := []Transaction{
		txn(-300, daysAgo(10), "Dining"),
		txn(-100, daysAgo(9), "Dining"),
		txn(-500, daysAgo(8), "Housing"),
		txn(-100, daysAgo(7), ""),
		txn(2500, daysAgo(6), "Income"), // credits excluded
	}

	breakdown := BreakDownByCategory(txns)

	require.Len(t, breakdown, 3)
	assert.Equal(t, "Housing", breakdown[0].Category)
	assert.Equal(t, 500.0, breakdown[0].Amount)
	assert.InDelta(t, 50.0, breakdown[0].Percentage, 1e-9)

	assert.Equal(t, "Dining", breakdown[1].Category)
	assert.Equal(t, 2, breakdown[1].Count)
	assert.InDelta(t, 40.0, breakdown[1].Percentage, 1e-9)

	assert.Equal(t, "Other", breakdown[2].Category)
}

func TestBreakDownByCategory_TopK(t *testing.T) {
	var txns []Transaction
	for i := 0; i < 12; i++ {
		txns = append(txns, txn(-float64(10+i), daysAgo(i+1), string(rune('A'+i))))
	}

	breakdown := BreakDownByCategory(txns)

	require.Len(t, breakdown, MaxBreakdownCategories)
	// Sorted descending by amount: the four smallest categories fell off.
	assert.Equal(t, 21.0, breakdown[0].Amount)
}

func TestBreakDownByCategory_Empty(t *testing.T) {
	assert.Empty(t, BreakDownByCategory(nil))
}
