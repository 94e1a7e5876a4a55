// Package testutil holds fixtures shared across package tests.
package testutil

import (
	"time"

	"github.com/contactkeval/option-lattice/internal/config"
	"github.com/contactkeval/option-lattice/internal/data"
)

// PutScenario is the classic hand-checkable textbook case.
func PutScenario() config.Scenario {
	return config.Scenario{
		S0:            36,
		Strike:        40,
		MaturityYears: 1,
		Rate:          0.06,
		Sigma:         0.2,
		Steps:         10,
		Kind:          "put",
	}
}

// StubProvider serves canned bars, or a canned error.
type StubProvider struct {
	Bars []data.Bar
	Err  error
}

func (s *StubProvider) Secondary() data.Provider { return nil }

func (s *StubProvider) GetDailyBars(ticker string, lookbackDays int) ([]data.Bar, error) {
	return s.Bars, s.Err
}

// TrendBars builds a deterministic, gently rising close series ending at
// final, one bar per day.
func TrendBars(n int, final float64) []data.Bar {
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	bars := make([]data.Bar, 0, n)
	for i := 0; i < n; i++ {
		cls := final * (1 - 0.001*float64(n-1-i))
		bars = append(bars, data.Bar{
			Date:  start.AddDate(0, 0, i),
			Open:  cls,
			High:  cls * 1.001,
			Low:   cls * 0.999,
			Close: cls,
			Vol:   1000,
		})
	}
	return bars
}
