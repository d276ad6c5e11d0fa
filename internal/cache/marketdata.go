package cache

import (
	"context"
	"errors"
	"time"

	"RSITracker/internal/collector"
	"RSITracker/internal/model"
)

// ErrNoData reports that the data source returned nothing for a symbol.
// It is not fatal: the caller skips the symbol this cycle and retries on
// the next one.
var ErrNoData = errors.New("no data from source")

// MarketData fronts a Fetcher with freshness-checked caches: price history
// keyed by (symbol, window) and quote snapshots keyed by symbol. The two
// caches have independent timeouts because descriptive fields change far
// less often than intraday prices.
type MarketData struct {
	fetcher collector.Fetcher
	history *Cache[*model.PriceSeries]
	quotes  *Cache[*model.QuoteSnapshot]
	now     func() time.Time
}

// NewMarketData creates the cache layer. now may be nil for time.Now.
func NewMarketData(fetcher collector.Fetcher, priceTTL, quoteTTL time.Duration, now func() time.Time) *MarketData {
	if now == nil {
		now = time.Now
	}
	return &MarketData{
		fetcher: fetcher,
		history: New[*model.PriceSeries](priceTTL, now),
		quotes:  New[*model.QuoteSnapshot](quoteTTL, now),
		now:     now,
	}
}

// History returns the price series for symbol over window, fetching only
// when no valid cached entry exists. An empty or failed fetch yields
// ErrNoData.
func (m *MarketData) History(ctx context.Context, symbol, window string) (*model.PriceSeries, error) {
	key := symbol + "/" + window
	if series, ok := m.history.Get(key); ok {
		return series, nil
	}

	bars, err := m.fetcher.FetchHistory(ctx, symbol, window)
	if err != nil || len(bars) == 0 {
		return nil, ErrNoData
	}
	series := &model.PriceSeries{
		Symbol:    symbol,
		Window:    window,
		Bars:      bars,
		FetchedAt: m.now(),
	}
	m.history.Put(key, series)
	return series, nil
}

// Quote returns the descriptive snapshot for symbol, fetching only when no
// valid cached entry exists. An empty or failed fetch yields ErrNoData.
func (m *MarketData) Quote(ctx context.Context, symbol string) (*model.QuoteSnapshot, error) {
	if snap, ok := m.quotes.Get(symbol); ok {
		return snap, nil
	}

	snap, err := m.fetcher.FetchQuote(ctx, symbol)
	if err != nil || snap == nil {
		return nil, ErrNoData
	}
	m.quotes.Put(symbol, snap)
	return snap, nil
}

// PurgeExpired sweeps both caches and returns the total entries removed.
func (m *MarketData) PurgeExpired() int {
	return m.history.PurgeExpired() + m.quotes.PurgeExpired()
}
