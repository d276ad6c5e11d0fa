package recorder

import (
	"time"

	"RSITracker/internal/model"
)

// Snapshot is one symbol's computed state at one refresh.
type Snapshot struct {
	Symbol    string
	Price     float64
	ChangePct float64
	Result    *model.IndicatorResult
	TakenAt   time.Time
}

// Recorder persists refresh history for offline analysis. Recording
// failures are logged by callers and never interrupt a refresh cycle.
type Recorder interface {
	RecordSnapshot(snap *Snapshot) error
	// PruneBefore removes snapshots older than cutoff and returns the
	// number of rows deleted.
	PruneBefore(cutoff time.Time) (int64, error)
	Close() error
}
