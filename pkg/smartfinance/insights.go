package smartfinance

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
)

// GenerateInsights runs every detector over the snapshot collections and
// returns their combined, unranked, uncapped findings. now anchors the
// rolling windows (drift, new-recurring, current-month cash flow).
func GenerateInsights(txns []Transaction, accounts []Account, now time.Time) []Insight {
	var insights []Insight
	insights = append(insights, DetectTotalSpendDrift(txns, now)...)
	insights = append(insights, DetectSpendingPatterns(txns, now)...)
	insights = append(insights, DetectAnomalies(txns)...)
	insights = append(insights, DetectLargeTransactions(txns, now)...)
	insights = append(insights, ForecastSpending(txns)...)
	insights = append(insights, DetectNewRecurringCharges(txns, now)...)
	insights = append(insights, SuggestSubscriptionSavings(txns)...)
	insights = append(insights, SuggestCategoryOptimization(txns)...)
	insights = append(insights, AnalyzeCreditUtilization(accounts)...)
	insights = append(insights, AdviseSavingsGoal(txns, now)...)
	return insights
}

// insightService implements the InsightService interface.
type insightService struct {
	client *Client
}

// Generate fetches a snapshot and analyzes it. Data-boundary failures and a
// completely empty snapshot degrade to the demo result rather than an error:
// the dashboard always gets a valid, typed response. Analyze keeps its neutral
// contract for explicitly supplied empty snapshots.
func (s *insightService) Generate(ctx context.Context) *AnalysisResult {
	snap, err := s.client.Data.Snapshot(ctx)
	if err != nil {
		s.client.logger.Warn().Err(err).Msg("snapshot unavailable, serving demo insights")
		sentry.CaptureException(err)
		return DemoResult(err)
	}
	if snap.Empty() {
		s.client.logger.Warn().Msg("provider returned an empty snapshot, serving demo insights")
		return DemoResult(ErrNoData)
	}
	return s.Analyze(ctx, snap)
}

// Analyze runs the configured oracle when present, otherwise the local
// engine. Oracle failures of any kind (timeout, abnormal exit, malformed
// output) degrade to the demo result with Success=false.
func (s *insightService) Analyze(ctx context.Context, snap *Snapshot) *AnalysisResult {
	now := s.client.now()

	if oracle := s.client.options.Oracle; oracle != nil {
		result, err := oracle.Score(ctx, snap.Transactions)
		if err != nil {
			s.client.logger.Warn().Err(err).Msg("scoring oracle failed, serving demo insights")
			sentry.CaptureException(err)
			return DemoResult(err)
		}
		return result
	}

	insights := GenerateInsights(snap.Transactions, snap.Accounts, now)
	return &AnalysisResult{
		Insights:    RankInsights(insights, s.client.options.MaxInsights),
		HealthScore: CalculateHealthScore(snap.Transactions, snap.Accounts, now),
		Success:     true,
	}
}

// healthService implements the HealthService interface.
type healthService struct {
	client *Client
}

// Score fetches a snapshot and computes the composite health score.
func (s *healthService) Score(ctx context.Context) (*FinancialHealthScore, error) {
	snap, err := s.client.Data.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	score := CalculateHealthScore(snap.Transactions, snap.Accounts, s.client.now())
	return &score, nil
}

// dashboardService implements the DashboardService interface.
type dashboardService struct {
	client *Client
}

// Summary computes the dashboard's numeric summary tiles.
func (s *dashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	snap, err := s.client.Data.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	summary := SummarizeDashboard(snap.Transactions, snap.Accounts, s.client.now())
	return &summary, nil
}

// Breakdown computes the category spending chart dataset.
func (s *dashboardService) Breakdown(ctx context.Context) ([]CategoryBreakdown, error) {
	snap, err := s.client.Data.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return BreakDownByCategory(snap.Transactions), nil
}
