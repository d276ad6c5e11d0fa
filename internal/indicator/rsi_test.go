package indicator

import (
	"math"
	"testing"
)

// referenceCloses is the classic 14-period worked example.
var referenceCloses = []float64{
	44, 44.34, 44.09, 44.15, 43.61, 44.33, 44.83, 45.10,
	45.42, 45.84, 46.08, 45.89, 46.03, 45.61, 46.28,
}

func TestRSISeries_InsufficientData(t *testing.T) {
	closes := []float64{10, 11, 12, 13, 14}
	for _, smoothing := range []Smoothing{SmoothingWilder, SmoothingEMA} {
		series := RSISeries(closes, 14, smoothing)
		if len(series) != len(closes) {
			t.Fatalf("%s: expected %d values, got %d", smoothing, len(closes), len(series))
		}
		for i, v := range series {
			if v != NeutralRSI {
				t.Errorf("%s: index %d: expected neutral %.1f, got %.4f", smoothing, i, NeutralRSI, v)
			}
		}
	}
}

func TestRSISeries_EmptyInput(t *testing.T) {
	if series := RSISeries(nil, 14, SmoothingWilder); len(series) != 0 {
		t.Fatalf("expected empty output for empty input, got %d values", len(series))
	}
}

func TestRSISeries_WithinBounds(t *testing.T) {
	closes := make([]float64, 100)
	price := 100.0
	for i := range closes {
		// Deterministic zig-zag with drift.
		if i%3 == 0 {
			price *= 1.02
		} else if i%3 == 1 {
			price *= 0.99
		} else {
			price *= 1.005
		}
		closes[i] = price
	}
	for _, smoothing := range []Smoothing{SmoothingWilder, SmoothingEMA} {
		for i, v := range RSISeries(closes, 14, smoothing) {
			if v < 0 || v > 100 {
				t.Errorf("%s: index %d: RSI %.4f out of [0,100]", smoothing, i, v)
			}
		}
	}
}

func TestRSISeries_AllGainsSaturates(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	series := RSISeries(closes, 14, SmoothingWilder)
	if got := series[len(series)-1]; got != 100 {
		t.Fatalf("expected RSI 100 for lossless series, got %.4f", got)
	}
}

func TestRSISeries_AllLossesApproachesZero(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 - float64(i)
	}
	series := RSISeries(closes, 14, SmoothingWilder)
	if got := series[len(series)-1]; got != 0 {
		t.Fatalf("expected RSI 0 for gainless series, got %.4f", got)
	}
}

func TestRSILatest_ReferenceSeries(t *testing.T) {
	// Wilder smoothing over the reference closes: avg gain 3.68/14,
	// avg loss 1.40/14, RSI 72.44.
	got := RSILatest(referenceCloses, 14, SmoothingWilder)
	if math.Abs(got-72.44) > 0.01 {
		t.Fatalf("expected RSI 72.44, got %.4f", got)
	}
	if got < 65 || got > 75 {
		t.Fatalf("expected RSI in the approaching-overbought band [65,75], got %.4f", got)
	}
}

func TestRSILatest_MatchesSeries(t *testing.T) {
	for _, smoothing := range []Smoothing{SmoothingWilder, SmoothingEMA} {
		series := RSISeries(referenceCloses, 14, smoothing)
		latest := RSILatest(referenceCloses, 14, smoothing)
		if series[len(series)-1] != latest {
			t.Errorf("%s: latest %.6f diverges from series tail %.6f",
				smoothing, latest, series[len(series)-1])
		}
	}
}

func TestRSISeries_WarmupIsNeutral(t *testing.T) {
	series := RSISeries(referenceCloses, 14, SmoothingWilder)
	for i := 0; i < 14; i++ {
		if series[i] != NeutralRSI {
			t.Errorf("index %d: expected neutral warm-up, got %.4f", i, series[i])
		}
	}
	if series[14] == NeutralRSI {
		t.Error("expected a computed value at the first post-warm-up index")
	}
}
