package collector

import (
	"context"

	"RSITracker/internal/model"
)

// Fetcher defines the interface for fetching market data. Implementations
// are fallible, latency-bearing and rate-limited; callers must not assume
// synchronous low-latency behavior.
type Fetcher interface {
	// FetchHistory returns ascending price bars for the symbol over the
	// requested lookback window (e.g. "5d", "1mo", "6mo", "1y").
	FetchHistory(ctx context.Context, symbol, window string) ([]model.PriceBar, error)
	// FetchQuote returns point-in-time descriptive fields for the symbol.
	FetchQuote(ctx context.Context, symbol string) (*model.QuoteSnapshot, error)
	Name() string
}
