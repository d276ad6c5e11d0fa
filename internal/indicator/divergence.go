package indicator

import "RSITracker/internal/model"

// Divergence gates: a bullish setup only counts while RSI is depressed, a
// bearish one only while RSI is elevated.
const (
	bullishRSICeiling = 40.0
	bearishRSIFloor   = 60.0
)

// TrendFunc reduces a windowed series to a trend direction; only the sign
// of the result is interpreted. Alternative detectors can be substituted
// without touching the scheduler.
type TrendFunc func(values []float64) float64

// LeastSquaresSlope is the default TrendFunc: the slope of an ordinary
// least-squares line fitted over the values at x = 0..n-1.
func LeastSquaresSlope(values []float64) float64 {
	n := float64(len(values))
	if n < 2 {
		return 0
	}
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}

// DetectDivergence classifies the disagreement between the price trend and
// the RSI trend over the trailing window. It is a heuristic filter, not a
// guarantee of an actual reversal. Series shorter than the window yield
// DivergenceNone.
func DetectDivergence(prices, rsi []float64, window int, trend TrendFunc) model.Divergence {
	if trend == nil {
		trend = LeastSquaresSlope
	}
	if window < 2 || len(prices) < window || len(rsi) < window {
		return model.DivergenceNone
	}

	priceTrend := trend(prices[len(prices)-window:])
	rsiTrend := trend(rsi[len(rsi)-window:])
	currentRSI := rsi[len(rsi)-1]

	switch {
	case priceTrend < 0 && rsiTrend > 0 && currentRSI < bullishRSICeiling:
		return model.DivergenceBullish
	case priceTrend > 0 && rsiTrend < 0 && currentRSI > bearishRSIFloor:
		return model.DivergenceBearish
	default:
		return model.DivergenceNone
	}
}
