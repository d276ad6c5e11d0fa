package model

// Signal is the trade suggestion derived from the RSI level.
type Signal string

const (
	SignalBuy  Signal = "BUY"
	SignalSell Signal = "SELL"
	SignalHold Signal = "HOLD"
)

// Divergence classifies disagreement between price trend and RSI trend.
type Divergence string

const (
	DivergenceNone    Divergence = "NONE"
	DivergenceBullish Divergence = "BULLISH"
	DivergenceBearish Divergence = "BEARISH"
)

// IndicatorResult holds all indicator values computed for one symbol on one
// refresh. It is derived data: recomputed every cycle, never persisted as
// state of record.
type IndicatorResult struct {
	RSI            float64 // always within [0,100]
	Signal         Signal
	Divergence     Divergence
	MovingAverages map[int]float64 // period -> SMA; absent while series too short
}
