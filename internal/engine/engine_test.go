package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactkeval/option-lattice/internal/config"
	"github.com/contactkeval/option-lattice/internal/testutil"
)

func baseConfig() *config.Config {
	return &config.Config{Scenario: testutil.PutScenario(), ReportDir: "./out", Verbosity: 0}
}

func TestRunProducesFullResult(t *testing.T) {
	res, err := New(baseConfig(), nil).Run()
	require.NoError(t, err)

	assert.Equal(t, 10, res.Scenario.Steps)
	assert.InDelta(t, 3.84430779159684, res.ReferencePut, 1e-9)
	assert.Equal(t, res.ReferencePut, res.Reference, "requested kind is put")
	assert.Greater(t, res.ReferenceCall, 0.0)

	// Root value sits in the lattice corner and matches the scalar result.
	assert.Equal(t, res.Valuation.Values[0][0], res.Valuation.Value)
	assert.Len(t, res.Valuation.Prices, 11)

	// Convergence series covers 10..max(10,M)+10 and the last sample is
	// closer to the reference than the first.
	require.Len(t, res.Convergence, 2)
	first := math.Abs(res.Convergence[0].Value - res.Reference)
	last := math.Abs(res.Convergence[len(res.Convergence)-1].Value - res.Reference)
	assert.Less(t, last, first)
}

func TestRunRejectsInvalidScenario(t *testing.T) {
	cases := []func(*config.Scenario){
		func(s *config.Scenario) { s.S0 = 0 },
		func(s *config.Scenario) { s.Strike = -40 },
		func(s *config.Scenario) { s.MaturityYears = 0 },
		func(s *config.Scenario) { s.Sigma = 0 },
		func(s *config.Scenario) { s.Steps = 0 },
		func(s *config.Scenario) { s.Kind = "straddle" },
	}

	for _, mutate := range cases {
		cfg := baseConfig()
		mutate(&cfg.Scenario)

		_, err := New(cfg, nil).Run()
		require.ErrorIs(t, err, config.ErrInvalidParameters)
	}
}

func TestRunResolvesSpotAndVolFromMarket(t *testing.T) {
	cfg := baseConfig()
	cfg.Market = config.Market{Ticker: "ACME", LookbackDays: 60}

	prov := &testutil.StubProvider{Bars: testutil.TrendBars(60, 42.0)}
	res, err := New(cfg, prov).Run()
	require.NoError(t, err)

	assert.InDelta(t, 42.0, res.Scenario.S0, 1e-9, "last close becomes spot")
	assert.Greater(t, res.Scenario.Sigma, 0.0, "vol derived from log returns")
	assert.NotEqual(t, 0.2, res.Scenario.Sigma, "configured sigma replaced")
}

func TestRunFailsWhenMarketDataMissing(t *testing.T) {
	cfg := baseConfig()
	cfg.Market.Ticker = "ACME"

	_, err := New(cfg, &testutil.StubProvider{Bars: nil}).Run()
	require.Error(t, err)

	_, err = New(cfg, nil).Run()
	require.Error(t, err, "ticker without provider")
}

func TestRunSurvivesArbitrageHazard(t *testing.T) {
	cfg := baseConfig()
	cfg.Scenario.Rate = 5.0 // e^{r dt} far above u: q > 1

	res, err := New(cfg, nil).Run()
	require.NoError(t, err, "hazard is a warning, not an error")
	assert.Greater(t, res.Valuation.Q, 1.0)
	assert.False(t, math.IsNaN(res.Valuation.Value))
}

func TestRunIsDeterministic(t *testing.T) {
	a, err := New(baseConfig(), nil).Run()
	require.NoError(t, err)
	b, err := New(baseConfig(), nil).Run()
	require.NoError(t, err)

	assert.Equal(t, a.Valuation.Value, b.Valuation.Value)
	assert.Equal(t, a.Convergence, b.Convergence)
}

func TestAnnualizedVolatility(t *testing.T) {
	// Constant closes: zero returns, zero vol.
	flat := []float64{50, 50, 50, 50, 50}
	assert.Equal(t, 0.0, AnnualizedVolatility(flat))

	// Too short a series falls back to 30%.
	assert.Equal(t, 0.30, AnnualizedVolatility([]float64{50}))

	// Alternating +-1% moves have strictly positive vol.
	wavy := []float64{100, 101, 99.99, 101, 99.99, 101}
	assert.Greater(t, AnnualizedVolatility(wavy), 0.0)
}
