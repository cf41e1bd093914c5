package smartfinance

import (
	"sort"
	"time"
)

// MaxBreakdownCategories caps the category spending chart.
const MaxBreakdownCategories = 8

// SummarizeDashboard computes the numeric summary tiles: total balance
// (credit accounts contribute their available balance, everything else its
// balance), aggregate available credit, and current-vs-prior-month income
// and expense totals with percentage deltas. A zero prior-month total yields
// a zero delta rather than a division error.
func SummarizeDashboard(txns []Transaction, accounts []Account, now time.Time) DashboardSummary {
	var summary DashboardSummary

	for _, a := range accounts {
		if a.AccountType == AccountCredit {
			summary.TotalBalance += a.AvailableBalance
			summary.AvailableCredit += a.AvailableBalance
		} else {
			summary.TotalBalance += a.Balance
		}
	}

	prior := now.UTC().AddDate(0, -1, 0)
	var priorIncome, priorExpenses float64
	for _, t := range txns {
		switch {
		case t.Date.SameMonth(now):
			if t.Amount > 0 {
				summary.MonthlyIncome += t.Amount
			} else {
				summary.MonthlyExpenses += -t.Amount
			}
		case t.Date.SameMonth(prior):
			if t.Amount > 0 {
				priorIncome += t.Amount
			} else {
				priorExpenses += -t.Amount
			}
		}
	}

	summary.IncomeChangePercent = percentChange(summary.MonthlyIncome, priorIncome)
	summary.ExpenseChangePercent = percentChange(summary.MonthlyExpenses, priorExpenses)
	return summary
}

// BreakDownByCategory returns per-category debit totals with their share of
// overall spending and transaction counts, sorted descending by amount and
// capped to the top MaxBreakdownCategories entries.
func BreakDownByCategory(txns []Transaction) []CategoryBreakdown {
	totals := make(map[string]*CategoryBreakdown)
	var overall float64
	for _, t := range txns {
		if t.Amount >= 0 {
			continue
		}
		c := t.CategoryOrDefault()
		b, ok := totals[c]
		if !ok {
			b = &CategoryBreakdown{Category: c}
			totals[c] = b
		}
		b.Amount += -t.Amount
		b.Count++
		overall += -t.Amount
	}

	breakdown := make([]CategoryBreakdown, 0, len(totals))
	for _, b := range totals {
		if overall > 0 {
			b.Percentage = b.Amount / overall * 100
		}
		breakdown = append(breakdown, *b)
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Amount != breakdown[j].Amount {
			return breakdown[i].Amount > breakdown[j].Amount
		}
		return breakdown[i].Category < breakdown[j].Category
	})

	if len(breakdown) > MaxBreakdownCategories {
		breakdown = breakdown[:MaxBreakdownCategories]
	}
	return breakdown
}

func percentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
