package display

import (
	"time"

	"RSITracker/internal/model"
)

// Row is the immutable per-symbol update handed to the display layer.
// Background refresh work builds rows and posts them; it never mutates
// display state directly.
type Row struct {
	Symbol      string
	CompanyName string
	Price       float64
	Change      float64
	ChangePct   float64
	RSI         float64
	Signal      model.Signal
	Divergence  model.Divergence
	MarketCap   float64
	DailyVolume float64
	AvgVolume   float64
	Bid         float64
	Ask         float64
	Err         string // non-empty when the symbol had no data this cycle
	UpdatedAt   time.Time
}

// ErrorRow builds the placeholder row shown when a symbol's data could not
// be fetched. Not fatal: the symbol is retried on the next cycle.
func ErrorRow(symbol, reason string, at time.Time) Row {
	return Row{Symbol: symbol, Err: reason, UpdatedAt: at}
}

// Status maps the row's signal onto the classic RSI status label.
func (r Row) Status() string {
	if r.Err != "" {
		return "Error"
	}
	switch r.Signal {
	case model.SignalSell:
		return "Overbought"
	case model.SignalBuy:
		return "Oversold"
	default:
		return "Neutral"
	}
}

// Sink receives per-symbol rows and global status lines. Implementations
// must tolerate being called from background goroutines.
type Sink interface {
	PublishRow(row Row)
	PublishStatus(status string)
}
