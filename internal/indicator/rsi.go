package indicator

// NeutralRSI is reported whenever a series is too short to compute RSI.
// The display layer always gets a value, never a NaN.
const NeutralRSI = 50.0

// Smoothing selects the averaging method for gains and losses. The two
// methods give materially different RSI values for the same input, so one
// instance must use the same method for the latest value and the full
// series.
type Smoothing string

const (
	// SmoothingWilder seeds with a simple average of the first period
	// changes, then applies Wilder's recursive smoothing. This is the
	// default.
	SmoothingWilder Smoothing = "wilder"
	// SmoothingEMA applies an exponential moving average with
	// alpha = 2/(period+1) to gains and losses.
	SmoothingEMA Smoothing = "ema"
)

// RSISeries computes the RSI for every position of closes. The output has
// the same length as the input. Positions before the warm-up completes, and
// every position when len(closes) < period+1, hold NeutralRSI. All values
// lie within [0, 100]; a lossless series saturates to 100 rather than
// dividing by zero.
func RSISeries(closes []float64, period int, smoothing Smoothing) []float64 {
	out := make([]float64, len(closes))
	for i := range out {
		out[i] = NeutralRSI
	}
	if period <= 0 || len(closes) < period+1 {
		return out
	}

	gains := make([]float64, len(closes))
	losses := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			gains[i] = delta
		} else {
			losses[i] = -delta
		}
	}

	switch smoothing {
	case SmoothingEMA:
		emaSeries(out, gains, losses, period)
	default:
		wilderSeries(out, gains, losses, period)
	}
	return out
}

// RSILatest returns the most recent RSI value. It is always the final
// element of RSISeries, so the latest-value and history views agree.
func RSILatest(closes []float64, period int, smoothing Smoothing) float64 {
	series := RSISeries(closes, period, smoothing)
	if len(series) == 0 {
		return NeutralRSI
	}
	return series[len(series)-1]
}

func wilderSeries(out, gains, losses []float64, period int) {
	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		avgGain += gains[i]
		avgLoss += losses[i]
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	out[period] = rsiFromAvg(avgGain, avgLoss)

	for i := period + 1; i < len(out); i++ {
		avgGain = (avgGain*float64(period-1) + gains[i]) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + losses[i]) / float64(period)
		out[i] = rsiFromAvg(avgGain, avgLoss)
	}
}

func emaSeries(out, gains, losses []float64, period int) {
	alpha := 2.0 / float64(period+1)
	avgGain := gains[1]
	avgLoss := losses[1]
	for i := 1; i < len(out); i++ {
		if i > 1 {
			avgGain = alpha*gains[i] + (1-alpha)*avgGain
			avgLoss = alpha*losses[i] + (1-alpha)*avgLoss
		}
		if i >= period {
			out[i] = rsiFromAvg(avgGain, avgLoss)
		}
	}
}

func rsiFromAvg(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - (100 / (1 + rs))
}
