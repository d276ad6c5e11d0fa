package display

import (
	"fmt"
	"strings"

	"RSITracker/internal/model"
)

// FormatMarketCap renders a market cap in a compact human form.
func FormatMarketCap(marketCap float64) string {
	switch {
	case marketCap == 0:
		return "N/A"
	case marketCap >= 1e12:
		return fmt.Sprintf("$%.2fT", marketCap/1e12)
	case marketCap >= 1e9:
		return fmt.Sprintf("$%.2fB", marketCap/1e9)
	case marketCap >= 1e6:
		return fmt.Sprintf("$%.1fM", marketCap/1e6)
	case marketCap >= 1e3:
		return fmt.Sprintf("$%.1fK", marketCap/1e3)
	default:
		return fmt.Sprintf("$%.0f", marketCap)
	}
}

// FormatVolume renders a share volume in a compact human form.
func FormatVolume(volume float64) string {
	switch {
	case volume == 0:
		return "N/A"
	case volume >= 1e9:
		return fmt.Sprintf("%.2fB", volume/1e9)
	case volume >= 1e6:
		return fmt.Sprintf("%.1fM", volume/1e6)
	case volume >= 1e3:
		return fmt.Sprintf("%.1fK", volume/1e3)
	default:
		return fmt.Sprintf("%.0f", volume)
	}
}

// FormatPrice renders a price, or N/A when the source reported none.
func FormatPrice(price float64) string {
	if price == 0 {
		return "N/A"
	}
	return fmt.Sprintf("$%.2f", price)
}

// FormatRow renders one row as a single console line.
func FormatRow(r Row) string {
	if r.Err != "" {
		return fmt.Sprintf("%-6s %s (%s)", r.Symbol, "Error", r.Err)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-6s %9s %+8.2f %+7.2f%% RSI %5.1f %-10s",
		r.Symbol, FormatPrice(r.Price), r.Change, r.ChangePct, r.RSI, r.Status()))
	b.WriteString(fmt.Sprintf(" cap %-8s vol %-8s", FormatMarketCap(r.MarketCap), FormatVolume(r.DailyVolume)))
	if r.Bid > 0 && r.Ask > 0 {
		b.WriteString(fmt.Sprintf(" bid/ask %.2f/%.2f", r.Bid, r.Ask))
	}
	if r.Divergence != model.DivergenceNone && r.Divergence != "" {
		b.WriteString(" div " + string(r.Divergence))
	}
	b.WriteString(" @ " + r.UpdatedAt.Format("15:04:05"))
	return b.String()
}
