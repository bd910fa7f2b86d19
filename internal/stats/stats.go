// Package stats computes summary metrics over a user's journaled trades.
// All functions are pure; aggregates are recomputed from the full trade
// set on every call because edits and deletes can change which trades
// are current.
package stats

import (
	"fmt"

	"github.com/TradingIntent/Intentnew/internal/models"
)

// Summary holds the aggregate metrics shown on the dashboard
type Summary struct {
	TotalTrades   int     `json:"total_trades"`
	WinRate       float64 `json:"win_rate"`
	TotalPnL      float64 `json:"total_pnl"`
	AvgConfidence float64 `json:"avg_confidence"`
}

// PnLResult holds per-trade profit and loss
type PnLResult struct {
	Percentage float64 `json:"percentage"`
	Amount     float64 `json:"amount"`
}

// PnL computes the per-trade profit/loss in percent of entry and in the
// position's base unit. EntryMarketCap must be positive; the store
// rejects anything else, but a zero entry here yields a zero result
// rather than a division by zero.
func PnL(trade models.Trade) PnLResult {
	if trade.EntryMarketCap <= 0 {
		return PnLResult{}
	}
	percentage := (trade.ExitMarketCap - trade.EntryMarketCap) / trade.EntryMarketCap * 100
	amount := (percentage / 100) * trade.PositionSize
	return PnLResult{Percentage: percentage, Amount: amount}
}

// Compute aggregates the summary metrics for a trade set. An empty set
// yields the all-zero summary.
func Compute(trades []models.Trade) Summary {
	if len(trades) == 0 {
		return Summary{}
	}

	total := len(trades)
	wins := 0
	totalPnL := 0.0
	confidenceSum := 0

	for _, t := range trades {
		if t.Outcome == models.OutcomeHitTP {
			wins++
		}
		totalPnL += PnL(t).Amount
		confidenceSum += t.ConfidenceLevel
	}

	return Summary{
		TotalTrades:   total,
		WinRate:       float64(wins) / float64(total) * 100,
		TotalPnL:      totalPnL,
		AvgConfidence: float64(confidenceSum) / float64(total),
	}
}

// FormatMarketCap abbreviates a market cap value with K/M/B suffixes,
// one decimal place.
func FormatMarketCap(value float64) string {
	switch {
	case value >= 1_000_000_000:
		return fmt.Sprintf("$%.1fB", value/1_000_000_000)
	case value >= 1_000_000:
		return fmt.Sprintf("$%.1fM", value/1_000_000)
	case value >= 1_000:
		return fmt.Sprintf("$%.1fK", value/1_000)
	}
	return fmt.Sprintf("$%g", value)
}

// FormatSigned renders a value with an explicit sign prefix, two
// decimal places.
func FormatSigned(value float64) string {
	if value >= 0 {
		return fmt.Sprintf("+%.2f", value)
	}
	return fmt.Sprintf("%.2f", value)
}
