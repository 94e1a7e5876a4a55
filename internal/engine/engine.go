// Package engine orchestrates a single pricing request: parameter
// resolution, validation, CRR valuation, the Black-Scholes reference and
// the convergence series. One request is one synchronous Run call; all
// lattice memory is freshly allocated per request and nothing is shared
// between runs.
package engine

import (
	"fmt"

	"github.com/contactkeval/option-lattice/internal/config"
	"github.com/contactkeval/option-lattice/internal/data"
	"github.com/contactkeval/option-lattice/internal/logger"
	"github.com/contactkeval/option-lattice/internal/pricing"
)

type Engine struct {
	cfg  *config.Config
	prov data.Provider
}

// Result is the full outcome of one pricing request.
type Result struct {
	Scenario      config.Scenario            `json:"scenario"`
	Valuation     pricing.Valuation          `json:"valuation"`
	ReferenceCall float64                    `json:"reference_call"`
	ReferencePut  float64                    `json:"reference_put"`
	Reference     float64                    `json:"reference"` // for the requested kind
	Convergence   []pricing.ConvergencePoint `json:"convergence"`
}

func New(cfg *config.Config, prov data.Provider) *Engine {
	return &Engine{cfg: cfg, prov: prov}
}

// Run executes one full pricing request.
//
// When the config names a ticker, the spot price and volatility come from
// the data provider (last close, annualized log-return vol) before
// validation. Validation rejects anything the pricing math must not see.
// A risk-neutral probability outside (0, 1) is not an error: the result is
// still returned, with a warning logged and q exposed in the Valuation
// for the caller to inspect.
func (e *Engine) Run() (*Result, error) {
	scenario := e.cfg.Scenario

	if e.cfg.Market.Ticker != "" {
		resolved, err := e.resolveFromMarket(scenario)
		if err != nil {
			return nil, err
		}
		scenario = resolved
	}

	if err := config.ValidateScenario(scenario); err != nil {
		return nil, err
	}

	params := scenario.Parameters()
	logger.Debugf("valuating %s: S0=%.4f K=%.4f T=%.4f r=%.4f sigma=%.4f M=%d",
		params.Kind, params.S0, params.Strike, params.Maturity, params.Rate, params.Sigma, params.Steps)

	val := pricing.ValuateCRR(params)
	if val.Q <= 0 || val.Q >= 1 {
		logger.Warnf("risk-neutral probability q=%.6f outside (0,1): "+
			"no-arbitrage bound d < e^(r*dt) < u violated, price is not economically meaningful", val.Q)
	}

	call, put := pricing.BlackScholes(params.S0, params.Strike, params.Maturity, params.Rate, params.Sigma)
	ref := call
	if params.Kind == pricing.Put {
		ref = put
	}

	conv := pricing.SampleConvergence(params)

	logger.Infof("CRR %s value %.6f at M=%d (Black-Scholes reference %.6f)",
		params.Kind, val.Value, params.Steps, ref)

	return &Result{
		Scenario:      scenario,
		Valuation:     val,
		ReferenceCall: call,
		ReferencePut:  put,
		Reference:     ref,
		Convergence:   conv,
	}, nil
}

// resolveFromMarket replaces S0 and sigma with values derived from daily
// closes of the configured ticker.
func (e *Engine) resolveFromMarket(s config.Scenario) (config.Scenario, error) {
	if e.prov == nil {
		return s, fmt.Errorf("market.ticker set but no data provider configured")
	}

	lookback := e.cfg.Market.LookbackDays
	if lookback <= 0 {
		lookback = 252
	}

	bars, err := e.prov.GetDailyBars(e.cfg.Market.Ticker, lookback)
	if err != nil {
		return s, fmt.Errorf("resolving %s from market data: %w", e.cfg.Market.Ticker, err)
	}
	if len(bars) < 2 {
		return s, fmt.Errorf("resolving %s from market data: only %d bars", e.cfg.Market.Ticker, len(bars))
	}

	closes := data.Closes(bars)
	s.S0 = closes[len(closes)-1]
	s.Sigma = AnnualizedVolatility(closes)

	logger.Infof("resolved %s from market data: S0=%.4f sigma=%.4f (%d bars)",
		e.cfg.Market.Ticker, s.S0, s.Sigma, len(bars))
	return s, nil
}
