package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"RSITracker/internal/model"
)

func newTestRecorder(t *testing.T) *SQLiteRecorder {
	t.Helper()
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "tracker.db"))
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func snapshotAt(symbol string, at time.Time) *Snapshot {
	return &Snapshot{
		Symbol:    symbol,
		Price:     189.46,
		ChangePct: 1.15,
		Result: &model.IndicatorResult{
			RSI:            72.44,
			Signal:         model.SignalSell,
			Divergence:     model.DivergenceNone,
			MovingAverages: map[int]float64{20: 185.2, 50: 180.1},
		},
		TakenAt: at,
	}
}

func TestSQLiteRecorder_RecordAndCount(t *testing.T) {
	r := newTestRecorder(t)
	now := time.Now()

	for i := 0; i < 3; i++ {
		if err := r.RecordSnapshot(snapshotAt("AAPL", now.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM snapshots WHERE symbol = ?`, "AAPL").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 snapshots, got %d", count)
	}
}

func TestSQLiteRecorder_RoundTripsFields(t *testing.T) {
	r := newTestRecorder(t)
	now := time.Now()
	if err := r.RecordSnapshot(snapshotAt("AAPL", now)); err != nil {
		t.Fatalf("record: %v", err)
	}

	var (
		ts               int64
		symbol, sig, div string
		price, pct, rsi  float64
		mas              string
	)
	row := r.db.QueryRow(`SELECT timestamp, symbol, price, change_pct, rsi, signal, divergence, mas FROM snapshots`)
	if err := row.Scan(&ts, &symbol, &price, &pct, &rsi, &sig, &div, &mas); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if ts != now.Unix() || symbol != "AAPL" || price != 189.46 || rsi != 72.44 {
		t.Fatalf("unexpected row: ts=%d symbol=%s price=%.2f rsi=%.2f", ts, symbol, price, rsi)
	}
	if sig != "SELL" || div != "NONE" {
		t.Fatalf("unexpected signal/divergence: %s/%s", sig, div)
	}
	if mas == "" || mas == "null" {
		t.Fatalf("expected serialized moving averages, got %q", mas)
	}
}

func TestSQLiteRecorder_PruneBefore(t *testing.T) {
	r := newTestRecorder(t)
	now := time.Now()

	r.RecordSnapshot(snapshotAt("AAPL", now.Add(-48*time.Hour)))
	r.RecordSnapshot(snapshotAt("AAPL", now.Add(-36*time.Hour)))
	r.RecordSnapshot(snapshotAt("AAPL", now))

	pruned, err := r.PruneBefore(now.Add(-24 * time.Hour))
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if pruned != 2 {
		t.Fatalf("expected 2 rows pruned, got %d", pruned)
	}

	var remaining int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM snapshots`).Scan(&remaining); err != nil {
		t.Fatalf("count: %v", err)
	}
	if remaining != 1 {
		t.Fatalf("expected 1 row remaining, got %d", remaining)
	}
}

func TestSQLiteRecorder_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.db")
	r, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	r.RecordSnapshot(snapshotAt("AAPL", time.Now()))
	r.Close()

	r2, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer r2.Close()

	var count int
	if err := r2.db.QueryRow(`SELECT COUNT(*) FROM snapshots`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected persisted snapshot after reopen, got %d", count)
	}
}

func TestNoopRecorder(t *testing.T) {
	var r NoopRecorder
	if err := r.RecordSnapshot(snapshotAt("AAPL", time.Now())); err != nil {
		t.Fatalf("record: %v", err)
	}
	if n, err := r.PruneBefore(time.Now()); err != nil || n != 0 {
		t.Fatalf("prune: %d, %v", n, err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
