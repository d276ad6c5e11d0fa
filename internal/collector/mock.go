package collector

import (
	"context"
	"time"

	"RSITracker/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price   float64
	History map[string][]model.PriceBar // symbol -> bars; nil falls back to generated bars
	Quotes  map[string]*model.QuoteSnapshot

	HistoryCalls int
	QuoteCalls   int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchHistory(_ context.Context, symbol, _ string) ([]model.PriceBar, error) {
	m.HistoryCalls++
	if m.History != nil {
		return m.History[symbol], nil
	}
	return GenerateBars(m.Price, 30), nil
}

func (m *MockFetcher) FetchQuote(_ context.Context, symbol string) (*model.QuoteSnapshot, error) {
	m.QuoteCalls++
	if m.Quotes != nil {
		return m.Quotes[symbol], nil
	}
	return &model.QuoteSnapshot{
		Symbol:       symbol,
		CurrentPrice: m.Price,
		CompanyName:  symbol,
		FetchedAt:    time.Now(),
	}, nil
}

// GenerateBars builds a gently trending series around basePrice.
func GenerateBars(basePrice float64, count int) []model.PriceBar {
	bars := make([]model.PriceBar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.PriceBar{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
