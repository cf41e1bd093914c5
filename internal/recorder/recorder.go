// Package recorder persists a history of analysis runs so the refresh daemon
// can be audited after the fact. The engine itself stays stateless; recording
// happens strictly after a run completes.
package recorder

import "time"

// Run holds the durable summary of one analysis run.
type Run struct {
	Timestamp    time.Time
	Accounts     int
	Transactions int
	Insights     int
	TopInsightID string
	OverallScore float64
	Success      bool
	Error        string
}

// Recorder persists analysis runs.
type Recorder interface {
	RecordRun(run *Run) error
	Close() error
}

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordRun(_ *Run) error { return nil }
func (n *NoopRecorder) Close() error           { return nil }
