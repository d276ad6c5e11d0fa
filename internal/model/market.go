package model

import "time"

// PriceBar represents a single candlestick bar.
type PriceBar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds the fetched price history for one symbol over one
// lookback window. Bars are sorted ascending by time and immutable after
// the fetch.
type PriceSeries struct {
	Symbol    string
	Window    string
	Bars      []PriceBar
	FetchedAt time.Time
}

// Closes extracts the close values in bar order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// QuoteSnapshot holds point-in-time descriptive fields for a symbol.
// Zero values mean the data source did not report the field.
type QuoteSnapshot struct {
	Symbol        string
	CurrentPrice  float64
	PreviousClose float64
	MarketCap     float64
	DailyVolume   float64
	AvgVolume     float64
	Bid           float64
	Ask           float64
	CompanyName   string
	Sector        string
	PERatio       float64
	DividendYield float64
	FetchedAt     time.Time
}
