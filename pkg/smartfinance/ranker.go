package smartfinance

import "sort"

// MaxDashboardInsights is the cap applied to the dashboard's insight feed.
const MaxDashboardInsights = 8

// RankInsights merges detector outputs into a single list sorted descending
// by priority, with confidence breaking ties, truncated to limit entries.
// The cap is the only de-noising: overlapping findings from different
// detectors all survive ranking. limit <= 0 disables truncation.
func RankInsights(insights []Insight, limit int) []Insight {
	ranked := make([]Insight, len(insights))
	copy(ranked, insights)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Priority != ranked[j].Priority {
			return ranked[i].Priority > ranked[j].Priority
		}
		return ranked[i].Confidence > ranked[j].Confidence
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
