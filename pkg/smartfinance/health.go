package smartfinance

import (
	"math"
	"time"
)

// neutralStability is the component score used when fewer than two months of
// spending exist and month-over-month stability cannot be judged.
const neutralStability = 50

// CalculateHealthScore derives the composite financial health score from a
// snapshot. Every component and the overall score live on the 0-100 scale;
// the overall score is the unweighted mean of the five components.
func CalculateHealthScore(txns []Transaction, accounts []Account, now time.Time) FinancialHealthScore {
	daily := dailyAmounts(DailySpending(txns))
	cov := CoefficientOfVariation(daily)

	_, _, savingsRate := MonthlySavingsRate(txns, now)

	components := HealthComponents{
		SpendingControl:    clampScore(100 - cov*10),
		SavingsRate:        clampScore(savingsRate * 5),
		DebtManagement:     debtManagementScore(accounts),
		BudgetAdherence:    clampScore(100 - cov*50),
		FinancialStability: stabilityScore(txns),
	}

	overall := (components.SpendingControl +
		components.SavingsRate +
		components.DebtManagement +
		components.BudgetAdherence +
		components.FinancialStability) / 5

	return FinancialHealthScore{
		Overall:         overall,
		Components:      components,
		Recommendations: healthRecommendations(components),
	}
}

func debtManagementScore(accounts []Account) float64 {
	utilization, hasCredit := CreditUtilization(accounts)
	if !hasCredit {
		return 100
	}
	return clampScore(100 - utilization*2)
}

func stabilityScore(txns []Transaction) float64 {
	months := monthlyAmounts(MonthlySpending(txns, forecastMonths))
	if len(months) < 2 {
		return neutralStability
	}
	mean := Mean(months)
	if mean == 0 {
		return neutralStability
	}
	factor := math.Min(1, math.Abs(Trend(months))/mean)
	return clampScore(100 - factor*100)
}

func healthRecommendations(c HealthComponents) []string {
	var recs []string
	if c.SavingsRate < 50 {
		recs = append(recs, "Increase your savings rate to at least 10-15% of income")
	}
	if c.SpendingControl < 70 {
		recs = append(recs, "Work on reducing spending volatility by creating a budget")
	}
	if c.DebtManagement < 70 {
		recs = append(recs, "Pay down revolving balances to bring credit utilization below 30%")
	}
	return recs
}

func clampScore(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
