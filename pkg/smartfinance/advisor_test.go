package smartfinance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreditUtilization(t *testing.T) {
	tests := []struct {
		name      string
		accounts  []Account
		want      float64
		hasCredit bool
	}{
		{
			name: "ten percent",
			accounts: []Account{
				{AccountType: AccountCredit, Balance: -1000, AvailableBalance: 9000},
			},
			want:      10,
			hasCredit: true,
		},
		{
			name: "zero used is zero regardless of available",
			accounts: []Account{
				{AccountType: AccountCredit, Balance: 0, AvailableBalance: 5000},
			},
			want:      0,
			hasCredit: true,
		},
		{
			name: "positive credit balance counts as zero used",
			accounts: []Account{
				{AccountType: AccountCredit, Balance: 250, AvailableBalance: 5000},
			},
			want:      0,
			hasCredit: true,
		},
		{
			name:      "no credit accounts",
			accounts:  []Account{{AccountType: AccountDepository, Balance: 3000}},
			want:      0,
			hasCredit: false,
		},
		{
			name:     "empty",
			accounts: nil,
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hasCredit := CreditUtilization(tt.accounts)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.Equal(t, tt.hasCredit, hasCredit)
		})
	}
}

func TestAnalyzeCreditUtilization_HighUtilization(t *testing.T) {
	accounts := []Account{
		{AccountType: AccountCredit, Balance: -4000, AvailableBalance: 6000},
		{AccountType: AccountDepository, Balance: 2500},
	}

	insights := AnalyzeCreditUtilization(accounts)

	require.Len(t, insights, 1)
	in := insights[0]
	assert.Equal(t, "credit-utilization", in.ID)
	assert.Equal(t, InsightRecommendation, in.Type)
	assert.Equal(t, ImpactHigh, in.Impact)
	assert.Equal(t, 88.0, in.Confidence)
	assert.Equal(t, 9, in.Priority)

	meta, ok := in.Metadata.(UtilizationMeta)
	require.True(t, ok)
	assert.InDelta(t, 40.0, meta.UtilizationPercent, 1e-9)
}

func TestAnalyzeCreditUtilization_BelowThreshold(t *testing.T) {
	accounts := []Account{
		{AccountType: AccountCredit, Balance: -500, AvailableBalance: 1500}, // 25%
		{AccountType: AccountDepository, Balance: 3000},
	}
	assert.Empty(t, AnalyzeCreditUtilization(accounts))
}

func TestAnalyzeCreditUtilization_RequiresBothAccountKinds(t *testing.T) {
	creditOnly := []Account{
		{AccountType: AccountCredit, Balance: -9000, AvailableBalance: 1000},
	}
	assert.Empty(t, AnalyzeCreditUtilization(creditOnly))
}

func TestAdviseSavingsGoal_LowRate(t *testing.T) {
	txns := []Transaction{
		txn(4000, daysAgo(10), "Income"),
		txn(-3600, daysAgo(5), "Rent"),
	}

	insights := AdviseSavingsGoal(txns, patternNow)

	require.Len(t, insights, 1)
	in := insights[0]
	assert.Equal(t, "savings-rate-goal", in.ID)
	assert.Equal(t, InsightGoal, in.Type)
	assert.Equal(t, ImpactHigh, in.Impact)
	assert.Equal(t, 85.0, in.Confidence)
	assert.Equal(t, 8, in.Priority)

	meta, ok := in.Metadata.(SavingsGoalMeta)
	require.True(t, ok)
	assert.InDelta(t, 10.0, meta.CurrentRate, 1e-9)
	assert.InDelta(t, 800.0, meta.RecommendedSavings, 1e-9)
	assert.InDelta(t, 400.0, meta.AdditionalNeeded, 1e-9)
}

func TestAdviseSavingsGoal_SuppressedWithoutIncome(t *testing.T) {
	// Expenses but no income this month: no goal, no division by zero.
	txns := []Transaction{
		txn(-3600, daysAgo(5), "Rent"),
	}
	assert.Empty(t, AdviseSavingsGoal(txns, patternNow))
}

func TestAdviseSavingsGoal_HighRateOpportunity(t *testing.T) {
	txns := []Transaction{
		txn(5000, daysAgo(10), "Income"),
		txn(-2000, daysAgo(5), "Rent"), // 60% savings rate
	}

	insights := AdviseSavingsGoal(txns, patternNow)

	require.Len(t, insights, 1)
	assert.Equal(t, "high-savings-rate", insights[0].ID)
	assert.Equal(t, InsightOpportunity, insights[0].Type)
	assert.Equal(t, 5, insights[0].Priority)
}

func TestMonthlySavingsRate_OnlyCurrentMonth(t *testing.T) {
	txns := []Transaction{
		txn(4000, daysAgo(10), "Income"),
		txn(-1000, daysAgo(5), "Rent"),
		txn(9999, daysAgo(45), "Old Income"), // prior month, excluded
	}

	income, expenses, rate := MonthlySavingsRate(txns, patternNow)
	assert.Equal(t, 4000.0, income)
	assert.Equal(t, 1000.0, expenses)
	assert.InDelta(t, 75.0, rate, 1e-9)
}

func TestSuggestSubscriptionSavings(t *testing.T) {
	txns := []Transaction{
		txn(-15.99, daysAgo(33), "Netflix Subscription"),
		txn(-15.99, daysAgo(3), "Netflix Subscription"),
		txn(-95.00, daysAgo(40), "Gym Membership"),
		txn(-95.00, daysAgo(10), "Gym Membership"),
	}

	insights := SuggestSubscriptionSavings(txns)

	require.Len(t, insights, 1)
	in := insights[0]
	assert.Equal(t, "subscription-optimization", in.ID)
	assert.Equal(t, ImpactHigh, in.Impact) // 110.99 > 100
	assert.Equal(t, 92.0, in.Confidence)
	assert.Equal(t, 8, in.Priority)

	meta, ok := in.Metadata.(SubscriptionMeta)
	require.True(t, ok)
	assert.Equal(t, 2, meta.SubscriptionCount)
	assert.InDelta(t, 110.99, meta.TotalAmount, 1e-9)
}

func TestSuggestSubscriptionSavings_NoRecurring(t *testing.T) {
	txns := []Transaction{
		txn(-15.99, daysAgo(3), "Netflix Subscription"),
	}
	assert.Empty(t, SuggestSubscriptionSavings(txns))
}

func TestSuggestCategoryOptimization(t *testing.T) {
	txns := []Transaction{
		txn(-400, daysAgo(10), "Dining"),
		txn(-300, daysAgo(12), "Dining"),
		txn(-100, daysAgo(8), "Transport"),
	}

	insights := SuggestCategoryOptimization(txns)

	require.Len(t, insights, 1)
	assert.Equal(t, "optimize-dining", insights[0].ID)
	assert.Equal(t, InsightOpportunity, insights[0].Type)

	meta, ok := insights[0].Metadata.(CategoryMeta)
	require.True(t, ok)
	assert.Equal(t, 700.0, meta.Amount)
}

func TestSuggestCategoryOptimization_SmallSpendIgnored(t *testing.T) {
	txns := []Transaction{
		txn(-100, daysAgo(8), "Transport"),
	}
	assert.Empty(t, SuggestCategoryOptimization(txns))
}
