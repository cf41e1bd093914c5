package recorder

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists analysis runs to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs
// migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmt := `CREATE TABLE IF NOT EXISTS analysis_runs (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp      INTEGER NOT NULL,
		accounts       INTEGER,
		transactions   INTEGER,
		insights       INTEGER,
		top_insight_id TEXT,
		overall_score  REAL,
		success        INTEGER,
		error          TEXT
	)`
	if _, err := r.db.Exec(stmt); err != nil {
		return err
	}
	_, err := r.db.Exec(`CREATE INDEX IF NOT EXISTS idx_runs_ts ON analysis_runs(timestamp)`)
	return err
}

// RecordRun inserts one analysis run.
func (r *SQLiteRecorder) RecordRun(run *Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(
		`INSERT INTO analysis_runs
			(timestamp, accounts, transactions, insights, top_insight_id, overall_score, success, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Timestamp.Unix(),
		run.Accounts,
		run.Transactions,
		run.Insights,
		run.TopInsightID,
		run.OverallScore,
		boolToInt(run.Success),
		run.Error,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
