package smartfinance

import (
	"fmt"
	"sort"
	"time"
)

const (
	utilizationAlertThreshold = 30
	targetSavingsRate         = 20
	highSavingsRate           = 30
	subscriptionHighTotal     = 100
	topCategoryThreshold      = 500
)

// CreditUtilization computes the aggregate utilization percentage across all
// credit accounts: used / (used + available) * 100, where used is the sum of
// max(0, -balance) and available is the sum of available balances. The
// second return value reports whether any credit account exists. A zero
// denominator yields 0.
func CreditUtilization(accounts []Account) (float64, bool) {
	var used, available float64
	hasCredit := false
	for _, a := range accounts {
		if a.AccountType != AccountCredit {
			continue
		}
		hasCredit = true
		if a.Balance < 0 {
			used += -a.Balance
		}
		available += a.AvailableBalance
	}
	if used+available == 0 {
		return 0, hasCredit
	}
	return used / (used + available) * 100, hasCredit
}

// AnalyzeCreditUtilization recommends paying down revolving balances when
// utilization exceeds 30%. It only runs when the snapshot holds both a
// credit and a depository account.
func AnalyzeCreditUtilization(accounts []Account) []Insight {
	hasDepository := false
	for _, a := range accounts {
		if a.AccountType == AccountDepository {
			hasDepository = true
			break
		}
	}
	if !hasDepository {
		return nil
	}

	utilization, hasCredit := CreditUtilization(accounts)
	if !hasCredit || utilization <= utilizationAlertThreshold {
		return nil
	}

	var used, available float64
	for _, a := range accounts {
		if a.AccountType != AccountCredit {
			continue
		}
		if a.Balance < 0 {
			used += -a.Balance
		}
		available += a.AvailableBalance
	}

	return []Insight{{
		ID:          "credit-utilization",
		Type:        InsightRecommendation,
		Title:       "High Credit Utilization",
		Description: fmt.Sprintf("Your credit utilization is %.1f%%. Keeping it below 30%% helps your credit score.", utilization),
		Impact:      ImpactHigh,
		Confidence:  88,
		Category:    "Debt Management",
		Actionable:  true,
		Priority:    9,
		Metadata: UtilizationMeta{
			UtilizationPercent: utilization,
			Used:               used,
			Available:          available,
		},
	}}
}

// MonthlySavingsRate returns the current calendar month's income, expenses
// and savings rate as a percentage. The rate is 0 when income is 0.
func MonthlySavingsRate(txns []Transaction, now time.Time) (income, expenses, rate float64) {
	for _, t := range txns {
		if !t.Date.SameMonth(now) {
			continue
		}
		if t.Amount > 0 {
			income += t.Amount
		} else {
			expenses += -t.Amount
		}
	}
	if income == 0 {
		return income, expenses, 0
	}
	return income, expenses, (income - expenses) / income * 100
}

// AdviseSavingsGoal derives a savings-rate goal from the current month's cash
// flow. With no income this month, no goal is emitted even if expenses exist.
// A rate above 30% earns an invest-the-surplus nudge instead.
func AdviseSavingsGoal(txns []Transaction, now time.Time) []Insight {
	income, expenses, rate := MonthlySavingsRate(txns, now)
	if income <= 0 {
		return nil
	}

	if rate < targetSavingsRate {
		recommended := income * targetSavingsRate / 100
		additional := recommended - (income - expenses)
		return []Insight{{
			ID:          "savings-rate-goal",
			Type:        InsightGoal,
			Title:       "Improve Savings Rate",
			Description: fmt.Sprintf("Your savings rate this month is %.1f%%. Save an extra $%.0f to reach the recommended %d%%.", rate, additional, targetSavingsRate),
			Impact:      ImpactHigh,
			Confidence:  85,
			Category:    "Savings Goals",
			Actionable:  true,
			Priority:    8,
			Metadata: SavingsGoalMeta{
				CurrentRate:        rate,
				TargetRate:         targetSavingsRate,
				RecommendedSavings: recommended,
				AdditionalNeeded:   additional,
			},
		}}
	}

	if rate > highSavingsRate {
		return []Insight{{
			ID:          "high-savings-rate",
			Type:        InsightOpportunity,
			Title:       "Excellent Savings Rate",
			Description: fmt.Sprintf("Your savings rate of %.1f%% is excellent. Consider investing the surplus for growth.", rate),
			Impact:      ImpactMedium,
			Confidence:  90,
			Category:    "Investment Opportunity",
			Actionable:  true,
			Priority:    5,
			Metadata: SavingsGoalMeta{
				CurrentRate: rate,
				TargetRate:  targetSavingsRate,
			},
		}}
	}

	return nil
}

// SuggestSubscriptionSavings totals the representative amounts of all
// recurring groups and recommends a review when any subscription exists.
func SuggestSubscriptionSavings(txns []Transaction) []Insight {
	charges := FindRecurringCharges(txns)
	if len(charges) == 0 {
		return nil
	}

	var total float64
	for _, c := range charges {
		total += c.Amount
	}

	impact := ImpactMedium
	if total > subscriptionHighTotal {
		impact = ImpactHigh
	}

	return []Insight{{
		ID:          "subscription-optimization",
		Type:        InsightRecommendation,
		Title:       "Optimize Subscriptions",
		Description: fmt.Sprintf("You have %d recurring subscriptions totaling $%.2f/month. Review and cancel unused ones.", len(charges), total),
		Impact:      impact,
		Confidence:  92,
		Category:    "Cost Optimization",
		Actionable:  true,
		Priority:    8,
		Metadata: SubscriptionMeta{
			TotalAmount:       total,
			SubscriptionCount: len(charges),
		},
	}}
}

// SuggestCategoryOptimization flags the single highest-spend category as an
// opportunity when its total is large enough to matter.
func SuggestCategoryOptimization(txns []Transaction) []Insight {
	totals := make(map[string]float64)
	for _, t := range txns {
		if t.Amount >= 0 {
			continue
		}
		totals[t.CategoryOrDefault()] += -t.Amount
	}
	if len(totals) == 0 {
		return nil
	}

	categories := make([]string, 0, len(totals))
	for c := range totals {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		if totals[categories[i]] != totals[categories[j]] {
			return totals[categories[i]] > totals[categories[j]]
		}
		return categories[i] < categories[j]
	})

	top := categories[0]
	amount := totals[top]
	if amount <= topCategoryThreshold {
		return nil
	}

	return []Insight{{
		ID:          "optimize-" + slugify(top),
		Type:        InsightOpportunity,
		Title:       fmt.Sprintf("Reduce %s Spending", top),
		Description: fmt.Sprintf("%s is your highest spending category at $%.2f. Consider ways to trim it.", top, amount),
		Impact:      ImpactMedium,
		Confidence:  80,
		Category:    top,
		Actionable:  true,
		Priority:    6,
		Metadata: CategoryMeta{
			Category: top,
			Amount:   amount,
		},
	}}
}
