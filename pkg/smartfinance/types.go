package smartfinance

// Transaction represents a single ledger entry from the aggregation provider.
// The sign convention is load-bearing: negative amounts are outflows (debits),
// positive amounts are inflows (credits). Every aggregate in this package
// depends on it; Type is a redundant tag and is never re-checked.
type Transaction struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"accountId"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	Merchant    string          `json:"merchant,omitempty"`
	Category    string          `json:"category,omitempty"`
	Subcategory string          `json:"subcategory,omitempty"`
	Date        Date            `json:"date"`
	Type        TransactionType `json:"type"`
	IsRecurring bool            `json:"isRecurring,omitempty"`
	Confidence  float64         `json:"confidence,omitempty"`
}

// TransactionType tags a transaction as a debit or credit.
type TransactionType string

const (
	TransactionDebit  TransactionType = "debit"
	TransactionCredit TransactionType = "credit"
)

// DefaultCategory is substituted when a transaction carries no category label.
const DefaultCategory = "Other"

// CategoryOrDefault returns the transaction's category, substituting
// DefaultCategory when the field is empty.
func (t *Transaction) CategoryOrDefault() string {
	if t.Category == "" {
		return DefaultCategory
	}
	return t.Category
}

// AccountType identifies the kind of account a snapshot row describes.
type AccountType string

const (
	AccountDepository AccountType = "depository"
	AccountCredit     AccountType = "credit"
	AccountLoan       AccountType = "loan"
	AccountInvestment AccountType = "investment"
)

// Account represents one bank account snapshot. For credit accounts the
// balance is typically negative when money is owed; utilization treats
// max(0, -Balance) as the amount used and AvailableBalance as headroom.
type Account struct {
	ID               string      `json:"id"`
	InstitutionName  string      `json:"institutionName"`
	AccountType      AccountType `json:"accountType"`
	Subtype          string      `json:"subtype,omitempty"`
	Balance          float64     `json:"balance"`
	AvailableBalance float64     `json:"availableBalance,omitempty"`
	Currency         string      `json:"currency"`
}

// Snapshot is the immutable input to every analysis: the full transaction and
// account collections as of one provider fetch. The engine never mutates it.
type Snapshot struct {
	Transactions []Transaction `json:"transactions"`
	Accounts     []Account     `json:"accounts"`
}

// Empty reports whether the snapshot carries no data at all.
func (s *Snapshot) Empty() bool {
	return s == nil || (len(s.Transactions) == 0 && len(s.Accounts) == 0)
}

// InsightType classifies a derived finding.
type InsightType string

const (
	InsightPrediction     InsightType = "prediction"
	InsightRecommendation InsightType = "recommendation"
	InsightAlert          InsightType = "alert"
	InsightGoal           InsightType = "goal"
	InsightOpportunity    InsightType = "opportunity"
)

// Impact grades how much a finding matters.
type Impact string

const (
	ImpactLow    Impact = "Low"
	ImpactMedium Impact = "Medium"
	ImpactHigh   Impact = "High"
)

// Insight is one derived finding. Insights are ephemeral: regenerated on
// every call, never persisted, identified only by a computed ID string.
type Insight struct {
	ID          string          `json:"id"`
	Type        InsightType     `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Impact      Impact          `json:"impact"`
	Confidence  float64         `json:"confidence"`
	Category    string          `json:"category"`
	Actionable  bool            `json:"actionable"`
	Priority    int             `json:"priority"`
	Metadata    InsightMetadata `json:"metadata,omitempty"`
}

// InsightMetadata is the closed set of per-insight annotation payloads. Each
// detector attaches exactly one concrete type; callers switch on the concrete
// type rather than probing an open-ended bag.
type InsightMetadata interface {
	insightMetadata()
}

// TrendMeta annotates a category-drift finding.
type TrendMeta struct {
	Category       string  `json:"category"`
	RecentAmount   float64 `json:"recentAmount"`
	PreviousAmount float64 `json:"previousAmount"`
	ChangePercent  float64 `json:"changePercent"`
}

// TotalDriftMeta annotates a total-spend drift finding.
type TotalDriftMeta struct {
	RecentAmount   float64 `json:"recentAmount"`
	PreviousAmount float64 `json:"previousAmount"`
	ChangePercent  float64 `json:"changePercent"`
}

// AnomalyMeta annotates an outlier-day finding.
type AnomalyMeta struct {
	Amount           float64 `json:"amount"`
	Date             string  `json:"date"`
	DeviationPercent float64 `json:"deviationPercent"`
}

// LargeTransactionMeta annotates a large-transaction alert.
type LargeTransactionMeta struct {
	Amount   float64 `json:"amount"`
	Merchant string  `json:"merchant,omitempty"`
	Category string  `json:"category"`
}

// RecurringMeta annotates a new-recurring-charge finding.
type RecurringMeta struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	AccountID   string  `json:"accountId,omitempty"`
	LastSeen    string  `json:"lastSeen"`
}

// ForecastMeta annotates a monthly spend forecast.
type ForecastMeta struct {
	PredictedAmount float64 `json:"predictedAmount"`
	Trend           float64 `json:"trend"`
	LastMonthAmount float64 `json:"lastMonthAmount"`
}

// UtilizationMeta annotates a credit-utilization recommendation.
type UtilizationMeta struct {
	UtilizationPercent float64 `json:"utilizationPercent"`
	Used               float64 `json:"used"`
	Available          float64 `json:"available"`
}

// SavingsGoalMeta annotates a savings-rate goal.
type SavingsGoalMeta struct {
	CurrentRate        float64 `json:"currentRate"`
	TargetRate         float64 `json:"targetRate"`
	RecommendedSavings float64 `json:"recommendedSavings"`
	AdditionalNeeded   float64 `json:"additionalNeeded"`
}

// SubscriptionMeta annotates a subscription-optimization recommendation.
type SubscriptionMeta struct {
	TotalAmount       float64 `json:"totalAmount"`
	SubscriptionCount int     `json:"subscriptionCount"`
}

// CategoryMeta annotates a top-category optimization opportunity.
type CategoryMeta struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

func (TrendMeta) insightMetadata()            {}
func (TotalDriftMeta) insightMetadata()       {}
func (AnomalyMeta) insightMetadata()          {}
func (LargeTransactionMeta) insightMetadata() {}
func (RecurringMeta) insightMetadata()        {}
func (ForecastMeta) insightMetadata()         {}
func (UtilizationMeta) insightMetadata()      {}
func (SavingsGoalMeta) insightMetadata()      {}
func (SubscriptionMeta) insightMetadata()     {}
func (CategoryMeta) insightMetadata()         {}

// HealthComponents holds the five 0-100 sub-scores of the composite score.
type HealthComponents struct {
	SpendingControl    float64 `json:"spendingControl"`
	SavingsRate        float64 `json:"savingsRate"`
	DebtManagement     float64 `json:"debtManagement"`
	BudgetAdherence    float64 `json:"budgetAdherence"`
	FinancialStability float64 `json:"financialStability"`
}

// FinancialHealthScore is one composite snapshot. Overall and every component
// share the 0-100 scale; Overall is the unweighted mean of the components.
type FinancialHealthScore struct {
	Overall         float64          `json:"overall"`
	Components      HealthComponents `json:"components"`
	Recommendations []string         `json:"recommendations"`
}

// RecurringCharge is one detected recurring group: its representative amount
// and description plus how often and when it was last seen.
type RecurringCharge struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	AccountID   string  `json:"accountId,omitempty"`
	Occurrences int     `json:"occurrences"`
	LastDate    Date    `json:"lastDate"`
}

// DashboardSummary holds the numeric summary tiles for the dashboard view.
type DashboardSummary struct {
	TotalBalance         float64 `json:"totalBalance"`
	AvailableCredit      float64 `json:"availableCredit"`
	MonthlyIncome        float64 `json:"monthlyIncome"`
	MonthlyExpenses      float64 `json:"monthlyExpenses"`
	IncomeChangePercent  float64 `json:"incomeChangePercent"`
	ExpenseChangePercent float64 `json:"expenseChangePercent"`
}

// CategoryBreakdown is one slice of the category spending chart.
type CategoryBreakdown struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
	Count      int     `json:"count"`
}

// DailyTotal is one day's debit total. Days with no spending never appear.
type DailyTotal struct {
	Day    Date    `json:"day"`
	Amount float64 `json:"amount"`
}

// MonthlyTotal is one calendar month's debit total, keyed YYYY-MM.
type MonthlyTotal struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// AnalysisResult is the envelope returned by the insight generator. Success
// is false when the result is the demo fallback rather than a live
// computation; Error carries the cause so callers can tell the two apart.
type AnalysisResult struct {
	Insights    []Insight            `json:"insights"`
	HealthScore FinancialHealthScore `json:"healthScore"`
	Success     bool                 `json:"success"`
	Error       string               `json:"error,omitempty"`
}
