package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"RSITracker/internal/cache"
	"RSITracker/internal/display"
	"RSITracker/internal/indicator"
	"RSITracker/internal/model"
	"RSITracker/internal/notifier"
	"RSITracker/internal/recorder"
	"RSITracker/internal/watchlist"

	"github.com/robfig/cron/v3"
)

// State is the scheduler lifecycle state.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateStopping
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateRunning:
		return "RUNNING"
	case StateStopping:
		return "STOPPING"
	case StateStopped:
		return "STOPPED"
	default:
		return "UNKNOWN"
	}
}

// ErrNotIdle reports a Start on a scheduler that already ran.
var ErrNotIdle = errors.New("scheduler is not idle")

// manualDelay spaces symbols during a manual refresh. Shorter than the
// scheduled delay because the user is waiting.
const manualDelay = 500 * time.Millisecond

// joinTimeout bounds how long Stop waits for the in-flight symbol update.
const joinTimeout = 5 * time.Second

// Options are the refresh policy knobs.
type Options struct {
	Window      string        // history lookback per fetch
	Interval    time.Duration // sleep between full cycles
	SymbolDelay time.Duration // delay between symbols within a cycle
	Retention   time.Duration // recorder history retention
}

// Scheduler drives periodic, rate-limited recomputation for every symbol in
// the watchlist and publishes results to the display sink. One background
// goroutine runs the scheduled cycles; manual refreshes run as independent
// goroutines over the same idempotent per-symbol update.
type Scheduler struct {
	market   *cache.MarketData
	engine   *indicator.Engine
	watch    *watchlist.Store
	sink     display.Sink
	recorder recorder.Recorder
	notify   *notifier.TelegramNotifier
	cron     *cron.Cron
	opts     Options

	state  atomic.Int32
	done   chan struct{}
	cancel context.CancelFunc

	mu          sync.Mutex
	lastSignals map[string]model.Signal
}

// New creates a Scheduler. notify may be nil or disabled; recording and
// alerting failures never interrupt a cycle.
func New(market *cache.MarketData, engine *indicator.Engine, watch *watchlist.Store,
	sink display.Sink, rec recorder.Recorder, notify *notifier.TelegramNotifier, opts Options) *Scheduler {
	if opts.Interval <= 0 {
		opts.Interval = 30 * time.Second
	}
	if opts.Window == "" {
		opts.Window = "1mo"
	}
	return &Scheduler{
		market:      market,
		engine:      engine,
		watch:       watch,
		sink:        sink,
		recorder:    rec,
		notify:      notify,
		cron:        cron.New(),
		opts:        opts,
		done:        make(chan struct{}),
		lastSignals: make(map[string]model.Signal),
	}
}

// State returns the current lifecycle state.
func (s *Scheduler) State() State {
	return State(s.state.Load())
}

// Start transitions IDLE to RUNNING, registers the maintenance cron jobs
// and launches the refresh loop.
func (s *Scheduler) Start(ctx context.Context) error {
	if !s.state.CompareAndSwap(int32(StateIdle), int32(StateRunning)) {
		return ErrNotIdle
	}

	if err := s.registerMaintenance(); err != nil {
		s.state.Store(int32(StateIdle))
		return err
	}
	s.cron.Start()

	ctx, s.cancel = context.WithCancel(ctx)
	go s.run(ctx)
	log.Println("[INFO] scheduler started")
	return nil
}

// Stop transitions RUNNING to STOPPING, lets the in-flight symbol update
// finish and waits for STOPPED, bounded by a join timeout. In-progress
// network calls are not aborted.
func (s *Scheduler) Stop() error {
	if !s.state.CompareAndSwap(int32(StateRunning), int32(StateStopping)) {
		return nil // never started, already stopping or stopped
	}
	s.cancel() // wakes the loop out of its sleeps
	s.cron.Stop()

	select {
	case <-s.done:
		log.Println("[INFO] scheduler stopped")
		return nil
	case <-time.After(joinTimeout):
		return fmt.Errorf("scheduler did not stop within %s", joinTimeout)
	}
}

func (s *Scheduler) run(ctx context.Context) {
	defer func() {
		s.state.Store(int32(StateStopped))
		close(s.done)
	}()

	for {
		s.runCycle(ctx)
		if s.State() != StateRunning {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(s.opts.Interval):
		}
	}
}

// runCycle updates every symbol in the watchlist once. The list is
// snapshotted at cycle start so concurrent mutation is tolerated; symbols
// removed mid-cycle are skipped when reached.
func (s *Scheduler) runCycle(ctx context.Context) {
	symbols := s.watch.List()
	if len(symbols) == 0 {
		s.sink.PublishStatus("Watchlist empty - add symbols to start tracking")
		return
	}

	s.sink.PublishStatus("Updating symbols...")
	for i, symbol := range symbols {
		if s.State() != StateRunning || ctx.Err() != nil {
			return
		}
		if !s.watch.Contains(symbol) {
			continue // removed since the cycle started
		}
		s.UpdateSymbol(ctx, symbol)

		// Deliberate spacing between symbols to respect the source's
		// implicit rate limits.
		if i < len(symbols)-1 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(s.opts.SymbolDelay):
			}
		}
	}
	s.sink.PublishStatus(fmt.Sprintf("Last update: %s", time.Now().Format("15:04:05")))
}

// UpdateSymbol fetches, computes and publishes one symbol. It is
// idempotent and safe to run concurrently with a scheduled cycle: both
// paths recompute from the same source and the caches are last-write-wins.
func (s *Scheduler) UpdateSymbol(ctx context.Context, symbol string) {
	now := time.Now()

	series, err := s.market.History(ctx, symbol, s.opts.Window)
	if err != nil {
		log.Printf("[WARN] %s: %v, skipping this cycle", symbol, err)
		s.sink.PublishRow(display.ErrorRow(symbol, "no data", now))
		return
	}

	// A missing quote is not fatal: price and change fall back to the
	// history bars, matching the data the RSI is computed from.
	quote, err := s.market.Quote(ctx, symbol)
	if err != nil {
		log.Printf("[WARN] %s: quote unavailable: %v", symbol, err)
		quote = &model.QuoteSnapshot{Symbol: symbol, CompanyName: symbol}
	}

	result := s.engine.Analyze(series.Bars)
	row := buildRow(symbol, series, quote, result, now)
	s.sink.PublishRow(row)

	if err := s.recorder.RecordSnapshot(&recorder.Snapshot{
		Symbol:    symbol,
		Price:     row.Price,
		ChangePct: row.ChangePct,
		Result:    result,
		TakenAt:   now,
	}); err != nil {
		log.Printf("[ERROR] record snapshot for %s: %v", symbol, err)
	}

	s.maybeAlert(ctx, row)
}

// RefreshAll runs a manual refresh of the whole watchlist in its own
// goroutine, independent of the scheduled loop.
func (s *Scheduler) RefreshAll(ctx context.Context) {
	go func() {
		symbols := s.watch.List()
		if len(symbols) == 0 {
			s.sink.PublishStatus("Watchlist empty - nothing to refresh")
			return
		}
		s.sink.PublishStatus("Refreshing all symbols...")
		for _, symbol := range symbols {
			if ctx.Err() != nil {
				return
			}
			s.UpdateSymbol(ctx, symbol)
			select {
			case <-ctx.Done():
				return
			case <-time.After(manualDelay):
			}
		}
		s.sink.PublishStatus("Manual refresh complete")
	}()
}

// RefreshSymbol runs a manual refresh of one symbol in its own goroutine.
func (s *Scheduler) RefreshSymbol(ctx context.Context, symbol string) {
	go s.UpdateSymbol(ctx, symbol)
}

func (s *Scheduler) registerMaintenance() error {
	if _, err := s.cron.AddFunc("@every 5m", func() {
		if n := s.market.PurgeExpired(); n > 0 {
			log.Printf("[INFO] purged %d expired cache entries", n)
		}
	}); err != nil {
		return fmt.Errorf("register cache sweep: %w", err)
	}
	if _, err := s.cron.AddFunc("@daily", func() {
		cutoff := time.Now().Add(-s.opts.Retention)
		n, err := s.recorder.PruneBefore(cutoff)
		if err != nil {
			log.Printf("[ERROR] prune snapshots: %v", err)
			return
		}
		log.Printf("[INFO] pruned %d snapshots older than %s", n, cutoff.Format("2006-01-02"))
	}); err != nil {
		return fmt.Errorf("register snapshot prune: %w", err)
	}
	return nil
}

// maybeAlert sends a notification when a symbol's signal changes. Alert
// state is per-process; a restart starts over.
func (s *Scheduler) maybeAlert(ctx context.Context, row display.Row) {
	if !s.notify.Enabled() || row.Err != "" {
		return
	}

	s.mu.Lock()
	previous, seen := s.lastSignals[row.Symbol]
	s.lastSignals[row.Symbol] = row.Signal
	s.mu.Unlock()

	if !seen || previous == row.Signal {
		return
	}
	if err := s.notify.SendWithRetry(ctx, notifier.FormatSignalAlert(row, previous), 3); err != nil {
		log.Printf("[ERROR] send alert for %s: %v", row.Symbol, err)
	}
}

func buildRow(symbol string, series *model.PriceSeries, quote *model.QuoteSnapshot,
	result *model.IndicatorResult, now time.Time) display.Row {
	closes := series.Closes()

	price := quote.CurrentPrice
	if price == 0 && len(closes) > 0 {
		price = closes[len(closes)-1]
	}
	previous := quote.PreviousClose
	if previous == 0 && len(closes) > 1 {
		previous = closes[len(closes)-2]
	}

	change := 0.0
	changePct := 0.0
	if previous != 0 {
		change = price - previous
		changePct = change / previous * 100
	}

	name := quote.CompanyName
	if name == "" {
		name = symbol
	}

	return display.Row{
		Symbol:      symbol,
		CompanyName: name,
		Price:       price,
		Change:      change,
		ChangePct:   changePct,
		RSI:         result.RSI,
		Signal:      result.Signal,
		Divergence:  result.Divergence,
		MarketCap:   quote.MarketCap,
		DailyVolume: quote.DailyVolume,
		AvgVolume:   quote.AvgVolume,
		Bid:         quote.Bid,
		Ask:         quote.Ask,
		UpdatedAt:   now,
	}
}
