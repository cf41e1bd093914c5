package smartfinance

import (
	"fmt"
	"math"
)

const (
	forecastMonths         = 3
	forecastTrendThreshold = 50
	forecastHighImpact     = 200
)

// ForecastSpending extrapolates next month's spend from the last three
// monthly totals. At least two months of spending are required; the
// prediction is last month plus the mean first difference. A finding is
// emitted only when the drift is material (more than $50/month either way),
// and is actionable only when spending is rising.
func ForecastSpending(txns []Transaction) []Insight {
	months := MonthlySpending(txns, forecastMonths)
	if len(months) < 2 {
		return nil
	}

	amounts := monthlyAmounts(months)
	trend := Trend(amounts)
	if math.Abs(trend) <= forecastTrendThreshold {
		return nil
	}

	last := amounts[len(amounts)-1]
	predicted := last + trend

	impact := ImpactMedium
	if math.Abs(trend) > forecastHighImpact {
		impact = ImpactHigh
	}

	direction := "decrease"
	if trend > 0 {
		direction = "increase"
	}

	return []Insight{{
		ID:          "spending-prediction",
		Type:        InsightPrediction,
		Title:       "Monthly Spending Forecast",
		Description: fmt.Sprintf("Based on your recent patterns, you're projected to spend $%.0f next month, a $%.0f %s.", predicted, math.Abs(trend), direction),
		Impact:      impact,
		Confidence:  78,
		Category:    "Budget Planning",
		Actionable:  trend > 0,
		Priority:    7,
		Metadata: ForecastMeta{
			PredictedAmount: predicted,
			Trend:           trend,
			LastMonthAmount: last,
		},
	}}
}
