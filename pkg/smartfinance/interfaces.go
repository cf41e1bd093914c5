package smartfinance

import (
	"context"
	"time"
)

// DataProvider is the aggregation collaborator: it owns token lifecycle,
// provider wire shapes and currency normalization, and hands the engine
// read-only account and transaction collections.
type DataProvider interface {
	// Accounts retrieves the current account snapshots.
	Accounts(ctx context.Context) ([]Account, error)

	// Transactions retrieves transactions dated within [start, end].
	Transactions(ctx context.Context, start, end time.Time) ([]Transaction, error)
}

// Oracle is an optional out-of-process scorer. It receives the serialized
// transaction collection and returns the same insight/health envelope the
// local engine produces. Implementations enforce their own timeout and
// response-size limits.
type Oracle interface {
	Score(ctx context.Context, txns []Transaction) (*AnalysisResult, error)
}

// DataService produces immutable input snapshots for analysis.
type DataService interface {
	// Snapshot fetches the current transaction and account collections.
	// Without a configured provider it returns the deterministic sample
	// snapshot; with one, provider failures surface as errors for the
	// caller's fallback path.
	Snapshot(ctx context.Context) (*Snapshot, error)
}

// InsightService generates ranked insights and the health score.
type InsightService interface {
	// Generate fetches a snapshot and analyzes it. It never returns an
	// error: any data or oracle failure degrades to the demo result with
	// Success=false.
	Generate(ctx context.Context) *AnalysisResult

	// Analyze runs the engine over an existing snapshot, delegating to the
	// configured oracle when one is present.
	Analyze(ctx context.Context, snap *Snapshot) *AnalysisResult
}

// HealthService computes the composite financial health score.
type HealthService interface {
	Score(ctx context.Context) (*FinancialHealthScore, error)
}

// DashboardService derives the dashboard's summary tiles and chart datasets.
type DashboardService interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
	Breakdown(ctx context.Context) ([]CategoryBreakdown, error)
}
