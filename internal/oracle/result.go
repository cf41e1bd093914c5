package oracle

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/smartfinance/smartfinance-go/pkg/smartfinance"
)

// wireInsight mirrors smartfinance.Insight with the metadata left as raw
// JSON. The oracle's metadata bags are open-ended and not carried across the
// boundary; every field the ranker and UI need is present on the insight
// itself.
type wireInsight struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Impact      string          `json:"impact"`
	Confidence  float64         `json:"confidence"`
	Category    string          `json:"category"`
	Actionable  bool            `json:"actionable"`
	Priority    int             `json:"priority"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
}

type wireResult struct {
	Insights    []wireInsight                      `json:"insights"`
	HealthScore *smartfinance.FinancialHealthScore `json:"healthScore"`
	Success     *bool                              `json:"success"`
	Error       string                             `json:"error,omitempty"`
}

var validTypes = map[string]bool{
	string(smartfinance.InsightPrediction):     true,
	string(smartfinance.InsightRecommendation): true,
	string(smartfinance.InsightAlert):          true,
	string(smartfinance.InsightGoal):           true,
	string(smartfinance.InsightOpportunity):    true,
}

// ParseResult decodes and validates an oracle response envelope.
func ParseResult(data []byte) (*smartfinance.AnalysisResult, error) {
	var wire wireResult
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, errors.Wrap(smartfinance.ErrOracleOutput, err.Error())
	}
	if wire.HealthScore == nil {
		return nil, errors.Wrap(smartfinance.ErrOracleOutput, "missing healthScore")
	}
	if wire.Success == nil {
		return nil, errors.Wrap(smartfinance.ErrOracleOutput, "missing success flag")
	}

	insights := make([]smartfinance.Insight, 0, len(wire.Insights))
	for _, wi := range wire.Insights {
		if !validTypes[wi.Type] {
			return nil, errors.Wrapf(smartfinance.ErrOracleOutput, "unknown insight type %q", wi.Type)
		}
		insights = append(insights, smartfinance.Insight{
			ID:          wi.ID,
			Type:        smartfinance.InsightType(wi.Type),
			Title:       wi.Title,
			Description: wi.Description,
			Impact:      smartfinance.Impact(wi.Impact),
			Confidence:  wi.Confidence,
			Category:    wi.Category,
			Actionable:  wi.Actionable,
			Priority:    wi.Priority,
		})
	}

	return &smartfinance.AnalysisResult{
		Insights:    insights,
		HealthScore: *wire.HealthScore,
		Success:     *wire.Success,
		Error:       wire.Error,
	}, nil
}
