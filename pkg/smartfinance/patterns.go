package smartfinance

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

const (
	driftWindow = 30 * 24 * time.Hour

	// recurringPrefixLen is the description-prefix length used as the
	// recurring-group key. Truncating before grouping is a coarse heuristic:
	// two different descriptions sharing a 20-character prefix and an
	// identical absolute amount collapse into one group. Kept for output
	// parity with existing dashboards.
	recurringPrefixLen = 20

	newRecurringWindow = 7 * 24 * time.Hour

	totalDriftThreshold  = 15.0
	totalDriftHighChange = 30.0

	largeTransactionWindow     = 7 * 24 * time.Hour
	largeTransactionPercentile = 95.0
	largeTransactionMinSample  = 5
)

// DetectSpendingPatterns compares each category's debit total over the last
// 30 days against the prior 30-60 day window relative to now. Categories with
// no spending in the prior window are skipped entirely, so newly appeared
// categories never produce a drift insight. A finding is emitted only when
// the change exceeds 20% in either direction.
func DetectSpendingPatterns(txns []Transaction, now time.Time) []Insight {
	windowStart := now.Add(-driftWindow)
	previousStart := now.Add(-2 * driftWindow)

	recent := make(map[string]float64)
	previous := make(map[string]float64)
	for _, t := range txns {
		if t.Amount >= 0 {
			continue
		}
		c := t.CategoryOrDefault()
		switch {
		case !t.Date.Before(windowStart):
			recent[c] += -t.Amount
		case !t.Date.Before(previousStart):
			previous[c] += -t.Amount
		}
	}

	categories := make([]string, 0, len(previous))
	for c := range previous {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	var insights []Insight
	for _, c := range categories {
		prev := previous[c]
		if prev <= 0 {
			continue
		}
		change := (recent[c] - prev) / prev * 100
		if math.Abs(change) <= 20 {
			continue
		}

		direction, titleWord := "decreased", "Decreased"
		insightType := InsightPrediction
		if change > 0 {
			direction, titleWord = "increased", "Increased"
			insightType = InsightAlert
		}

		impact := ImpactMedium
		priority := 7
		if math.Abs(change) > 50 {
			impact = ImpactHigh
			priority = 9
		}

		insights = append(insights, Insight{
			ID:          "category-trend-" + slugify(c),
			Type:        insightType,
			Title:       fmt.Sprintf("%s Spending %s by %.1f%%", c, titleWord, math.Abs(change)),
			Description: fmt.Sprintf("Your %s spending has %s by %.1f%% compared to the previous 30 days.", strings.ToLower(c), direction, math.Abs(change)),
			Impact:      impact,
			Confidence:  math.Min(95, 60+math.Abs(change)),
			Category:    c,
			Actionable:  change > 0,
			Priority:    priority,
			Metadata: TrendMeta{
				Category:       c,
				RecentAmount:   recent[c],
				PreviousAmount: prev,
				ChangePercent:  change,
			},
		})
	}
	return insights
}

// DetectTotalSpendDrift compares the all-category debit total of the last 30
// days against the prior 30-60 day window. The threshold is coarser than the
// per-category check (15% instead of 20%) so a broad shift spread across many
// small categories still surfaces.
func DetectTotalSpendDrift(txns []Transaction, now time.Time) []Insight {
	windowStart := now.Add(-driftWindow)
	previousStart := now.Add(-2 * driftWindow)

	var recent, previous float64
	for _, t := range txns {
		if t.Amount >= 0 {
			continue
		}
		switch {
		case !t.Date.Before(windowStart):
			recent += -t.Amount
		case !t.Date.Before(previousStart):
			previous += -t.Amount
		}
	}
	if recent <= 0 || previous <= 0 {
		return nil
	}

	change := (recent - previous) / previous * 100
	if math.Abs(change) <= totalDriftThreshold {
		return nil
	}

	direction, titleWord := "decreased", "Decreased"
	insightType := InsightPrediction
	if change > 0 {
		direction, titleWord = "increased", "Increased"
		insightType = InsightAlert
	}

	impact := ImpactMedium
	priority := 7
	if math.Abs(change) > totalDriftHighChange {
		impact = ImpactHigh
		priority = 9
	}

	return []Insight{{
		ID:          "spending-trend",
		Type:        insightType,
		Title:       fmt.Sprintf("Spending %s by %.1f%%", titleWord, math.Abs(change)),
		Description: fmt.Sprintf("Your total spending has %s by $%.2f compared to last month.", direction, math.Abs(recent-previous)),
		Impact:      impact,
		Confidence:  math.Min(95, 70+math.Abs(change)),
		Category:    "Spending Analysis",
		Actionable:  change > 0,
		Priority:    priority,
		Metadata: TotalDriftMeta{
			RecentAmount:   recent,
			PreviousAmount: previous,
			ChangePercent:  change,
		},
	}}
}

// DetectAnomalies flags unusually high spending days. A day is an outlier
// when its total exceeds the daily mean by more than two population standard
// deviations. The check is one-sided: unusually quiet days are never flagged.
// At most one insight is emitted, describing the most recent outlier day.
func DetectAnomalies(txns []Transaction) []Insight {
	days := DailySpending(txns)
	if len(days) == 0 {
		return nil
	}

	amounts := dailyAmounts(days)
	mean := Mean(amounts)
	stddev := StandardDeviation(amounts)
	if mean <= 0 {
		return nil
	}

	var latest *DailyTotal
	for i := range days {
		d := days[i]
		if d.Amount > mean && d.Amount-mean > 2*stddev {
			latest = &days[i]
		}
	}
	if latest == nil {
		return nil
	}

	deviation := (latest.Amount/mean - 1) * 100
	return []Insight{{
		ID:          "anomaly-spending",
		Type:        InsightAlert,
		Title:       "Unusual Spending Detected",
		Description: fmt.Sprintf("You spent $%.2f on %s, which is %.0f%% above your daily average.", latest.Amount, latest.Day, deviation),
		Impact:      ImpactMedium,
		Confidence:  85,
		Category:    "Budget Control",
		Actionable:  true,
		Priority:    8,
		Metadata: AnomalyMeta{
			Amount:           latest.Amount,
			Date:             latest.Day.String(),
			DeviationPercent: deviation,
		},
	}}
}

// DetectLargeTransactions flags the single biggest debit of the last seven
// days when its amount sits strictly above the 95th percentile of all debit
// amounts in the snapshot. Fewer than five debits yield no finding: the
// percentile is meaningless on a handful of points.
func DetectLargeTransactions(txns []Transaction, now time.Time) []Insight {
	var debits []Transaction
	for _, t := range txns {
		if t.Amount < 0 {
			debits = append(debits, t)
		}
	}
	if len(debits) < largeTransactionMinSample {
		return nil
	}

	amounts := make([]float64, len(debits))
	for i, t := range debits {
		amounts[i] = -t.Amount
	}
	threshold := Percentile(amounts, largeTransactionPercentile)

	cutoff := now.Add(-largeTransactionWindow)
	var largest *Transaction
	for i := range debits {
		t := &debits[i]
		if -t.Amount <= threshold || t.Date.Before(cutoff) {
			continue
		}
		if largest == nil || -t.Amount > -largest.Amount {
			largest = t
		}
	}
	if largest == nil {
		return nil
	}

	amount := -largest.Amount
	merchant := largest.Merchant
	if merchant == "" {
		merchant = largest.Description
	}
	category := largest.CategoryOrDefault()
	return []Insight{{
		ID:          "large-transaction",
		Type:        InsightAlert,
		Title:       "Large Transaction Alert",
		Description: fmt.Sprintf("Large expense of $%.2f detected at %s in %s.", amount, merchant, category),
		Impact:      ImpactMedium,
		Confidence:  100,
		Category:    "Transaction Monitoring",
		Actionable:  true,
		Priority:    7,
		Metadata: LargeTransactionMeta{
			Amount:   amount,
			Merchant: merchant,
			Category: category,
		},
	}}
}

// FindRecurringCharges groups debit transactions by the pair (description
// prefix, absolute amount) and returns every group with at least two members
// as a recurring charge. Grouping is order-independent; the returned slice is
// sorted by description then amount.
func FindRecurringCharges(txns []Transaction) []RecurringCharge {
	type group struct {
		charge RecurringCharge
	}
	groups := make(map[string]*group)

	for _, t := range txns {
		if t.Amount >= 0 {
			continue
		}
		amount := -t.Amount
		key := fmt.Sprintf("%s|%.2f", descriptionPrefix(t.Description), amount)

		g, ok := groups[key]
		if !ok {
			g = &group{charge: RecurringCharge{
				Description: t.Description,
				Amount:      amount,
				AccountID:   t.AccountID,
				LastDate:    t.Date,
			}}
			groups[key] = g
		}
		g.charge.Occurrences++
		if t.Date.After(g.charge.LastDate.Time) {
			g.charge.Description = t.Description
			g.charge.AccountID = t.AccountID
			g.charge.LastDate = t.Date
		}
	}

	var charges []RecurringCharge
	for _, g := range groups {
		if g.charge.Occurrences >= 2 {
			charges = append(charges, g.charge)
		}
	}
	sort.Slice(charges, func(i, j int) bool {
		if charges[i].Description != charges[j].Description {
			return charges[i].Description < charges[j].Description
		}
		return charges[i].Amount < charges[j].Amount
	})
	return charges
}

// DetectNewRecurringCharges emits a single alert when any recurring group's
// most recent member falls within the last seven days of now. The first
// matching group in sorted order is reported.
func DetectNewRecurringCharges(txns []Transaction, now time.Time) []Insight {
	cutoff := now.Add(-newRecurringWindow)
	for _, charge := range FindRecurringCharges(txns) {
		if charge.LastDate.Before(cutoff) {
			continue
		}
		return []Insight{{
			ID:          "new-recurring-" + slugify(charge.Description),
			Type:        InsightAlert,
			Title:       "New Recurring Charge",
			Description: fmt.Sprintf("Recurring charge of $%.2f (%s) detected. Verify this is authorized.", charge.Amount, charge.Description),
			Impact:      ImpactMedium,
			Confidence:  82,
			Category:    "Account Monitoring",
			Actionable:  true,
			Priority:    7,
			Metadata: RecurringMeta{
				Amount:      charge.Amount,
				Description: charge.Description,
				AccountID:   charge.AccountID,
				LastSeen:    charge.LastDate.String(),
			},
		}}
	}
	return nil
}

func descriptionPrefix(desc string) string {
	runes := []rune(desc)
	if len(runes) > recurringPrefixLen {
		runes = runes[:recurringPrefixLen]
	}
	return string(runes)
}

func slugify(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}
