package smartfinance

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	accounts []Account
	txns     []Transaction
	err      error
}

func (s *stubProvider) Accounts(_ context.Context) ([]Account, error) {
	return s.accounts, s.err
}

func (s *stubProvider) Transactions(_ context.Context, _, _ time.Time) ([]Transaction, error) {
	return s.txns, s.err
}

type stubOracle struct {
	result *AnalysisResult
	err    error
}

func (s *stubOracle) Score(_ context.Context, _ []Transaction) (*AnalysisResult, error) {
	return s.result, s.err
}

func fixedClock() time.Time { return patternNow }

func TestGenerateInsights_RisingSpendEndToEnd(t *testing.T) {
	// Three months where the last month doubles the two steady ones. The
	// forecast trend is 500 > 50, so an actionable prediction must appear in
	// the uncapped, unfiltered output.
	var txns []Transaction
	for d := 1; d <= 28; d += 3 {
		txns = append(txns, txn(-100, NewDate(2026, 6, d), "Groceries"))
		txns = append(txns, txn(-100, NewDate(2026, 7, d), "Groceries"))
		txns = append(txns, txn(-200, NewDate(2026, 8, d), "Groceries"))
	}

	insights := GenerateInsights(txns, nil, patternNow)

	var forecast *Insight
	for i := range insights {
		if insights[i].ID == "spending-prediction" {
			forecast = &insights[i]
		}
	}
	require.NotNil(t, forecast, "expected a spending prediction")
	assert.Equal(t, InsightPrediction, forecast.Type)
	assert.True(t, forecast.Actionable)
}

func TestGenerateInsights_EmptyInput(t *testing.T) {
	assert.Empty(t, GenerateInsights(nil, nil, patternNow))
}

func TestInsightService_AnalyzeLocalEngine(t *testing.T) {
	client, err := NewClient(&ClientOptions{Clock: fixedClock})
	require.NoError(t, err)

	snap := SampleSnapshot(patternNow)
	result := client.Insights.Analyze(context.Background(), snap)

	require.NotNil(t, result)
	assert.True(t, result.Success)
	assert.Empty(t, result.Error)
	assert.LessOrEqual(t, len(result.Insights), MaxDashboardInsights)
	assert.NotZero(t, result.HealthScore.Overall)

	// Ranked output: priorities never increase down the list.
	for i := 1; i < len(result.Insights); i++ {
		assert.GreaterOrEqual(t, result.Insights[i-1].Priority, result.Insights[i].Priority)
	}
}

func TestInsightService_EmptySnapshotIsNeutral(t *testing.T) {
	client, err := NewClient(&ClientOptions{Clock: fixedClock})
	require.NoError(t, err)

	result := client.Insights.Analyze(context.Background(), &Snapshot{})

	require.NotNil(t, result)
	assert.True(t, result.Success)
	assert.Empty(t, result.Insights)
	// The health score is still computable from defaults.
	assert.InDelta(t, 70.0, result.HealthScore.Overall, 1e-9)
}

func TestInsightService_ProviderFailureFallsBackToDemo(t *testing.T) {
	client, err := NewClient(&ClientOptions{
		Provider: &stubProvider{err: errors.New("connection refused")},
		Clock:    fixedClock,
	})
	require.NoError(t, err)

	result := client.Insights.Generate(context.Background())

	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "connection refused")
	assert.Equal(t, DemoInsights(), result.Insights)
	assert.Equal(t, DemoHealthScore(), result.HealthScore)
}

func TestInsightService_EmptyProviderSnapshotFallsBackToDemo(t *testing.T) {
	client, err := NewClient(&ClientOptions{
		Provider: &stubProvider{},
		Clock:    fixedClock,
	})
	require.NoError(t, err)

	result := client.Insights.Generate(context.Background())

	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Equal(t, "no data available", result.Error)
	assert.Equal(t, DemoInsights(), result.Insights)
}

func TestInsightService_OracleFailureFallsBackToDemo(t *testing.T) {
	client, err := NewClient(&ClientOptions{
		Oracle: &stubOracle{err: ErrOracleFailed},
		Clock:  fixedClock,
	})
	require.NoError(t, err)

	result := client.Insights.Generate(context.Background())

	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "scoring oracle failed")
	assert.Equal(t, DemoInsights(), result.Insights)
}

func TestInsightService_OracleResultPassedThrough(t *testing.T) {
	oracleResult := &AnalysisResult{
		Insights:    []Insight{{ID: "oracle-1", Type: InsightAlert, Priority: 5}},
		HealthScore: FinancialHealthScore{Overall: 55},
		Success:     true,
	}
	client, err := NewClient(&ClientOptions{
		Oracle: &stubOracle{result: oracleResult},
		Clock:  fixedClock,
	})
	require.NoError(t, err)

	result := client.Insights.Generate(context.Background())
	assert.Equal(t, oracleResult, result)
}

func TestDataService_ProviderWiring(t *testing.T) {
	accounts := []Account{{ID: "a1", AccountType: AccountDepository, Balance: 100}}
	txns := []Transaction{txn(-10, daysAgo(1), "Coffee")}

	client, err := NewClient(&ClientOptions{
		Provider: &stubProvider{accounts: accounts, txns: txns},
		Clock:    fixedClock,
	})
	require.NoError(t, err)

	snap, err := client.Data.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, accounts, snap.Accounts)
	assert.Equal(t, txns, snap.Transactions)
}

func TestDataService_SampleFallbackWithoutProvider(t *testing.T) {
	client, err := NewClient(&ClientOptions{Clock: fixedClock})
	require.NoError(t, err)

	snap, err := client.Data.Snapshot(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, snap.Transactions)
	assert.Len(t, snap.Accounts, 3)

	// Deterministic: same reference time, same snapshot.
	again, err := client.Data.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, snap, again)
}

func TestHealthService_Score(t *testing.T) {
	client, err := NewClient(&ClientOptions{Clock: fixedClock})
	require.NoError(t, err)

	score, err := client.Health.Score(context.Background())
	require.NoError(t, err)
	require.NotNil(t, score)
	assert.GreaterOrEqual(t, score.Overall, 0.0)
	assert.LessOrEqual(t, score.Overall, 100.0)
}

func TestDashboardService_SummaryAndBreakdown(t *testing.T) {
	client, err := NewClient(&ClientOptions{Clock: fixedClock})
	require.NoError(t, err)

	summary, err := client.Dashboard.Summary(context.Background())
	require.NoError(t, err)
	assert.NotZero(t, summary.TotalBalance)

	breakdown, err := client.Dashboard.Breakdown(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, breakdown)
	assert.LessOrEqual(t, len(breakdown), MaxBreakdownCategories)
}

func TestDemoResult(t *testing.T) {
	result := DemoResult(ErrNoData)

	assert.False(t, result.Success)
	assert.Equal(t, "no data available", result.Error)
	require.Len(t, result.Insights, 3)
	assert.InDelta(t, 78.8, result.HealthScore.Overall, 1e-9)
}
