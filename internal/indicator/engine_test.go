package indicator

import (
	"testing"
	"time"

	"RSITracker/internal/model"
)

func barsFromCloses(closes []float64) []model.PriceBar {
	bars := make([]model.PriceBar, len(closes))
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		bars[i] = model.PriceBar{Time: base.AddDate(0, 0, i), Close: c}
	}
	return bars
}

func TestClassifySignal(t *testing.T) {
	e := NewEngine()
	cases := []struct {
		rsi  float64
		want model.Signal
	}{
		{75, model.SignalSell},
		{70.01, model.SignalSell},
		{70, model.SignalHold}, // boundary: strictly above triggers SELL
		{50, model.SignalHold},
		{30, model.SignalHold}, // boundary: strictly below triggers BUY
		{29.99, model.SignalBuy},
		{5, model.SignalBuy},
		{0, model.SignalBuy},
		{100, model.SignalSell},
	}
	for _, c := range cases {
		if got := e.ClassifySignal(c.rsi); got != c.want {
			t.Errorf("ClassifySignal(%.2f) = %s, want %s", c.rsi, got, c.want)
		}
	}
}

func TestClassifySignal_CustomThresholds(t *testing.T) {
	e := NewEngine()
	e.Overbought = 80
	e.Oversold = 20
	if got := e.ClassifySignal(75); got != model.SignalHold {
		t.Errorf("expected HOLD at 75 with overbought=80, got %s", got)
	}
	if got := e.ClassifySignal(15); got != model.SignalBuy {
		t.Errorf("expected BUY at 15 with oversold=20, got %s", got)
	}
}

func TestAnalyze_ShortSeriesNeutral(t *testing.T) {
	e := NewEngine()
	result := e.Analyze(barsFromCloses([]float64{100, 101, 102}))
	if result.RSI != NeutralRSI {
		t.Errorf("expected neutral RSI, got %.4f", result.RSI)
	}
	if result.Signal != model.SignalHold {
		t.Errorf("expected HOLD, got %s", result.Signal)
	}
	if result.Divergence != model.DivergenceNone {
		t.Errorf("expected no divergence, got %s", result.Divergence)
	}
	if len(result.MovingAverages) != 0 {
		t.Errorf("expected no moving averages for short series, got %v", result.MovingAverages)
	}
}

func TestAnalyze_EmptyInput(t *testing.T) {
	e := NewEngine()
	result := e.Analyze(nil)
	if result.RSI != NeutralRSI || result.Signal != model.SignalHold {
		t.Fatalf("expected neutral defaults on empty input, got %+v", result)
	}
}

func TestAnalyze_MovingAveragePeriods(t *testing.T) {
	e := NewEngine()
	closes := make([]float64, 25)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	result := e.Analyze(barsFromCloses(closes))

	if _, ok := result.MovingAverages[20]; !ok {
		t.Error("expected MA20 with 25 bars")
	}
	if _, ok := result.MovingAverages[50]; ok {
		t.Error("did not expect MA50 with 25 bars")
	}
	// MA20 of the last 20 values 105..124.
	if got, want := result.MovingAverages[20], 114.5; got != want {
		t.Errorf("MA20 = %.2f, want %.2f", got, want)
	}
}

func TestAnalyze_OverboughtSeries(t *testing.T) {
	e := NewEngine()
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	result := e.Analyze(barsFromCloses(closes))
	if result.RSI != 100 {
		t.Errorf("expected saturated RSI, got %.2f", result.RSI)
	}
	if result.Signal != model.SignalSell {
		t.Errorf("expected SELL, got %s", result.Signal)
	}
}

func TestSMA(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	if ma, ok := SMA(values, 3); !ok || ma != 4 {
		t.Errorf("SMA(3) = %.2f, %v; want 4, true", ma, ok)
	}
	if _, ok := SMA(values, 6); ok {
		t.Error("expected ok=false when series shorter than period")
	}
	if _, ok := SMA(values, 0); ok {
		t.Error("expected ok=false for non-positive period")
	}
}
