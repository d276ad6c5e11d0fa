package indicator

import "RSITracker/internal/model"

// Engine turns a price series into RSI, moving averages, a buy/sell/hold
// signal and a divergence classification. It never fails on malformed
// input: a series shorter than required yields neutral defaults so the
// display layer always has a value to show.
type Engine struct {
	Period           int     // RSI lookback, default 14
	Overbought       float64 // SELL above this RSI, default 70
	Oversold         float64 // BUY below this RSI, default 30
	MAPeriods        []int
	DivergenceWindow int
	Smoothing        Smoothing
	Trend            TrendFunc // nil means LeastSquaresSlope
}

// NewEngine returns an Engine with the standard 14/70/30 configuration,
// Wilder smoothing, 20/50 moving averages and a 20-bar divergence window.
func NewEngine() *Engine {
	return &Engine{
		Period:           14,
		Overbought:       70,
		Oversold:         30,
		MAPeriods:        []int{20, 50},
		DivergenceWindow: 20,
		Smoothing:        SmoothingWilder,
	}
}

// ClassifySignal maps an RSI value onto a trade signal using the engine
// thresholds.
func (e *Engine) ClassifySignal(rsi float64) model.Signal {
	switch {
	case rsi > e.Overbought:
		return model.SignalSell
	case rsi < e.Oversold:
		return model.SignalBuy
	default:
		return model.SignalHold
	}
}

// Analyze computes the full indicator set from ascending price bars.
func (e *Engine) Analyze(bars []model.PriceBar) *model.IndicatorResult {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}

	rsiSeries := RSISeries(closes, e.Period, e.Smoothing)
	rsi := NeutralRSI
	if len(rsiSeries) > 0 {
		rsi = rsiSeries[len(rsiSeries)-1]
	}

	return &model.IndicatorResult{
		RSI:            rsi,
		Signal:         e.ClassifySignal(rsi),
		Divergence:     DetectDivergence(closes, rsiSeries, e.DivergenceWindow, e.Trend),
		MovingAverages: MovingAverages(closes, e.MAPeriods),
	}
}
