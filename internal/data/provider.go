// Package data provides market data provider implementations.
//
// Providers exist so a scenario can name a ticker instead of hardcoding the
// spot price and volatility: the engine takes the last daily close as S0 and
// derives sigma from the close-to-close log returns. Providers chain through
// Secondary() so a primary source can fall back to another one.
package data

import "time"

// Bar is a simplified daily OHLC record.
type Bar struct {
	Date  time.Time
	Open  float64
	High  float64
	Low   float64
	Close float64
	Vol   float64
}

// Provider supplies market data.
type Provider interface {
	// Secondary returns the fallback provider, or nil.
	Secondary() Provider

	// GetDailyBars returns daily bars for the ticker covering roughly the
	// given number of calendar days back from now, oldest first.
	GetDailyBars(ticker string, lookbackDays int) ([]Bar, error)
}

// Closes extracts the close column from a bar series.
func Closes(bars []Bar) []float64 {
	out := make([]float64, 0, len(bars))
	for _, b := range bars {
		out = append(out, b.Close)
	}
	return out
}
