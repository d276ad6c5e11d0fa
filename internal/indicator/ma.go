package indicator

// SMA computes the simple moving average of the most recent period values.
// ok is false while the series is shorter than the period.
func SMA(values []float64, period int) (float64, bool) {
	if period <= 0 || len(values) < period {
		return 0, false
	}
	sum := 0.0
	for i := len(values) - period; i < len(values); i++ {
		sum += values[i]
	}
	return sum / float64(period), true
}

// MovingAverages returns the SMA for each requested period. Periods the
// series is too short for are absent from the result.
func MovingAverages(values []float64, periods []int) map[int]float64 {
	mas := make(map[int]float64, len(periods))
	for _, p := range periods {
		if ma, ok := SMA(values, p); ok {
			mas[p] = ma
		}
	}
	return mas
}
