package smartfinance

// Demo fallback values. Every degradation path (unreachable provider, oracle
// failure, malformed oracle output) resolves to this fixed result instead of
// propagating the failure; Success=false and Error let callers tell fallback
// from live output.

// DemoInsights returns the fixed exemplar insight set.
func DemoInsights() []Insight {
	return []Insight{
		{
			ID:          "demo-spending-trend",
			Type:        InsightPrediction,
			Title:       "Monthly Spending Forecast",
			Description: "Based on current patterns, you're on track to spend $2,850 this month.",
			Impact:      ImpactMedium,
			Confidence:  82,
			Category:    "Budget Planning",
			Actionable:  true,
			Priority:    8,
		},
		{
			ID:          "demo-subscription",
			Type:        InsightRecommendation,
			Title:       "Subscription Optimization",
			Description: "You could save $47/month by reviewing and canceling unused subscriptions.",
			Impact:      ImpactHigh,
			Confidence:  94,
			Category:    "Cost Optimization",
			Actionable:  true,
			Priority:    9,
		},
		{
			ID:          "demo-savings",
			Type:        InsightGoal,
			Title:       "Improve Savings Rate",
			Description: "Increase monthly savings by $150 to reach the recommended 20% savings rate.",
			Impact:      ImpactHigh,
			Confidence:  85,
			Category:    "Savings Goals",
			Actionable:  true,
			Priority:    8,
		},
	}
}

// DemoHealthScore returns the fixed exemplar health score.
func DemoHealthScore() FinancialHealthScore {
	components := HealthComponents{
		SpendingControl:    82,
		SavingsRate:        75,
		DebtManagement:     81,
		BudgetAdherence:    79,
		FinancialStability: 77,
	}
	return FinancialHealthScore{
		Overall:    78.8,
		Components: components,
		Recommendations: []string{
			"Increase your savings rate to at least 15% of income",
			"Consider investing surplus funds for long-term growth",
			"Review monthly subscriptions for optimization opportunities",
		},
	}
}

// DemoResult wraps the demo insights and health score in the analysis
// envelope. When err is non-nil its message is carried so callers can
// distinguish fallback from live results.
func DemoResult(err error) *AnalysisResult {
	result := &AnalysisResult{
		Insights:    DemoInsights(),
		HealthScore: DemoHealthScore(),
		Success:     false,
	}
	if err != nil {
		result.Error = err.Error()
	}
	return result
}
