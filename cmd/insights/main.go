// Command insights is the one-shot scoring CLI: it reads a JSON file holding
// a transaction array (and optionally accounts), runs the analysis engine and
// prints the insight/health envelope on stdout. Its process contract matches
// the external scoring oracle, so this binary can itself be configured as the
// oracle of another deployment.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/smartfinance/smartfinance-go/pkg/smartfinance"
)

func main() {
	limit := flag.Int("limit", smartfinance.MaxDashboardInsights, "maximum insights to emit (0 = uncapped)")
	pretty := flag.Bool("pretty", false, "indent the JSON output")
	flag.Parse()

	if flag.NArg() != 1 {
		fail("transaction data file path required as argument")
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fail(fmt.Sprintf("cannot read input file: %v", err))
	}

	snap, err := decodeInput(data)
	if err != nil {
		fail(fmt.Sprintf("invalid input JSON: %v", err))
	}

	now := time.Now()
	insights := smartfinance.GenerateInsights(snap.Transactions, snap.Accounts, now)
	result := smartfinance.AnalysisResult{
		Insights:    smartfinance.RankInsights(insights, *limit),
		HealthScore: smartfinance.CalculateHealthScore(snap.Transactions, snap.Accounts, now),
		Success:     true,
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		fail(fmt.Sprintf("cannot encode result: %v", err))
	}
}

// decodeInput accepts either a bare transaction array (the oracle contract)
// or a full snapshot object with transactions and accounts.
func decodeInput(data []byte) (*smartfinance.Snapshot, error) {
	var txns []smartfinance.Transaction
	if err := json.Unmarshal(data, &txns); err == nil {
		return &smartfinance.Snapshot{Transactions: txns}, nil
	}

	var snap smartfinance.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// fail prints an error envelope on stdout, mirroring the oracle protocol,
// and exits non-zero.
func fail(msg string) {
	_ = json.NewEncoder(os.Stdout).Encode(map[string]string{"error": msg})
	os.Exit(1)
}
