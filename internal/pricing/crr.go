package pricing

import "math"

// OptionKind selects the payoff applied at maturity.
type OptionKind string

const (
	Call OptionKind = "call"
	Put  OptionKind = "put"
)

// Parameters describes a single European option valuation request.
// All fields are plain scalars; the struct is copied freely and never
// mutated by the engine.
type Parameters struct {
	S0       float64    // spot price of the underlying
	Strike   float64    // strike price K
	Maturity float64    // time to expiry in years
	Rate     float64    // risk-free rate (annual, continuous compounding)
	Sigma    float64    // volatility (annual, as a decimal)
	Steps    int        // number of binomial steps M
	Kind     OptionKind // call or put
}

// WithSteps returns a copy of p with the step count replaced.
func (p Parameters) WithSteps(steps int) Parameters {
	p.Steps = steps
	return p
}

// Payoff returns the option's intrinsic value for an underlying price s.
func (p Parameters) Payoff(s float64) float64 {
	if p.Kind == Call {
		return math.Max(s-p.Strike, 0)
	}
	return math.Max(p.Strike-s, 0)
}

// Valuation is the full result of a CRR valuation.
//
// Value is the option price at the root node (0, 0). Prices and Values are
// the complete underlying-price and option-value lattices, returned for
// inspection and rendering. Q, U, D and Discount are the model factors the
// value was computed with; Q in particular is exposed so callers can detect
// the silent hazard of a risk-neutral probability outside (0, 1), which
// happens when the no-arbitrage bound d < exp(r*dt) < u is violated. The
// valuation itself never rejects such parameters: it returns a well-defined
// number that is not economically meaningful.
type Valuation struct {
	Value    float64 `json:"value"`
	Prices   Lattice `json:"prices"`
	Values   Lattice `json:"values"`
	Q        float64 `json:"q"`
	U        float64 `json:"u"`
	D        float64 `json:"d"`
	Discount float64 `json:"discount"`
}

// ValuateCRR prices a European option on a Cox-Ross-Rubinstein binomial
// tree by backward induction.
//
// The tree factors are derived exactly as in BuildPriceLattice (they must
// match, since q depends on them): dt = T/M, u = exp(sigma*sqrt(dt)),
// d = 1/u, discount df = exp(-r*dt), and the risk-neutral probability
// q = (exp(r*dt) - d) / (u - d).
//
// Terminal payoffs fill column M; every earlier node is the discounted
// risk-neutral expectation over its two children:
//
//	value(j, t) = df * (q*value(j, t+1) + (1-q)*value(j+1, t+1))
//
// The computation is deterministic double-precision arithmetic with no
// hidden state: identical parameters yield bit-identical results.
//
// Preconditions (caller-enforced, see engine validation): Steps >= 1 and
// S0, Strike, Maturity, Sigma all strictly positive.
func ValuateCRR(p Parameters) Valuation {
	dt := p.Maturity / float64(p.Steps)
	u := math.Exp(p.Sigma * math.Sqrt(dt))
	d := 1 / u
	df := math.Exp(-p.Rate * dt)
	q := (math.Exp(p.Rate*dt) - d) / (u - d)

	prices := BuildPriceLattice(p.S0, p.Sigma, p.Maturity, p.Steps)

	values := NewLattice(p.Steps)
	for j := 0; j <= p.Steps; j++ {
		values[j][p.Steps] = p.Payoff(prices[j][p.Steps])
	}
	for t := p.Steps - 1; t >= 0; t-- {
		for j := 0; j <= t; j++ {
			values[j][t] = df * (q*values[j][t+1] + (1-q)*values[j+1][t+1])
		}
	}

	return Valuation{
		Value:    values[0][0],
		Prices:   prices,
		Values:   values,
		Q:        q,
		U:        u,
		D:        d,
		Discount: df,
	}
}
