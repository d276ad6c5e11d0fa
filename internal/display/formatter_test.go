package display

import (
	"strings"
	"testing"
	"time"

	"RSITracker/internal/model"
)

func TestFormatMarketCap(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "N/A"},
		{2.85e12, "$2.85T"},
		{950e9, "$950.00B"},
		{45.2e6, "$45.2M"},
		{800e3, "$800.0K"},
		{500, "$500"},
	}
	for _, c := range cases {
		if got := FormatMarketCap(c.in); got != c.want {
			t.Errorf("FormatMarketCap(%g) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatVolume(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "N/A"},
		{1.25e9, "1.25B"},
		{53.7e6, "53.7M"},
		{9_500, "9.5K"},
		{420, "420"},
	}
	for _, c := range cases {
		if got := FormatVolume(c.in); got != c.want {
			t.Errorf("FormatVolume(%g) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	if got := FormatPrice(0); got != "N/A" {
		t.Errorf("FormatPrice(0) = %q, want N/A", got)
	}
	if got := FormatPrice(189.456); got != "$189.46" {
		t.Errorf("FormatPrice(189.456) = %q, want $189.46", got)
	}
}

func TestFormatRow(t *testing.T) {
	row := Row{
		Symbol:      "AAPL",
		Price:       189.46,
		Change:      2.15,
		ChangePct:   1.15,
		RSI:         72.4,
		Signal:      model.SignalSell,
		Divergence:  model.DivergenceBearish,
		MarketCap:   2.85e12,
		DailyVolume: 53.7e6,
		Bid:         189.45,
		Ask:         189.47,
		UpdatedAt:   time.Date(2024, 6, 1, 15, 4, 5, 0, time.UTC),
	}
	line := FormatRow(row)
	for _, want := range []string{"AAPL", "$189.46", "+2.15", "+1.15%", "72.4", "Overbought", "$2.85T", "53.7M", "bid/ask 189.45/189.47", "div BEARISH", "15:04:05"} {
		if !strings.Contains(line, want) {
			t.Errorf("FormatRow missing %q in %q", want, line)
		}
	}
}

func TestFormatRow_NoDivergenceOmitted(t *testing.T) {
	row := Row{Symbol: "MSFT", Price: 410, RSI: 55, Signal: model.SignalHold, Divergence: model.DivergenceNone}
	if line := FormatRow(row); strings.Contains(line, "div ") {
		t.Errorf("expected no divergence marker, got %q", line)
	}
}

func TestFormatRow_Error(t *testing.T) {
	row := ErrorRow("BOGUS", "no data", time.Now())
	line := FormatRow(row)
	if !strings.Contains(line, "BOGUS") || !strings.Contains(line, "Error") || !strings.Contains(line, "no data") {
		t.Errorf("unexpected error line %q", line)
	}
}

func TestRowStatus(t *testing.T) {
	cases := []struct {
		row  Row
		want string
	}{
		{Row{Signal: model.SignalSell}, "Overbought"},
		{Row{Signal: model.SignalBuy}, "Oversold"},
		{Row{Signal: model.SignalHold}, "Neutral"},
		{Row{Err: "no data", Signal: model.SignalSell}, "Error"},
	}
	for _, c := range cases {
		if got := c.row.Status(); got != c.want {
			t.Errorf("Status(%+v) = %q, want %q", c.row.Signal, got, c.want)
		}
	}
}
