package pricing

import "math"

// BlackScholes calculates the closed-form price of a European call and put,
// used as the convergence target for the CRR tree.
//
// Parameters:
//   - s0: spot price of the underlying asset
//   - k: strike price of the option
//   - maturity: time to expiry in years
//   - r: risk-free interest rate (annual)
//   - sigma: volatility of the underlying asset (annual, as a decimal)
//
// Returns:
//
//	The theoretical call and put prices. The put is derived from the call
//	via put-call parity (put = call + K*exp(-rT) - S0) rather than from a
//	second cumulative-normal formula, so the two prices are consistent by
//	construction and can never drift apart.
//
// Note: maturity = 0 or sigma = 0 divides by zero and propagates NaN into
// both results. The function does not guard against this; callers must
// validate inputs first.
func BlackScholes(
	s0 float64, // spot
	k float64, // strike
	maturity float64, // time to expiry in years
	r float64, // risk-free rate
	sigma float64, // volatility
) (call, put float64) {

	d1 := (math.Log(s0/k) + (r+0.5*sigma*sigma)*maturity) / (sigma * math.Sqrt(maturity))
	d2 := d1 - sigma*math.Sqrt(maturity)

	discountedStrike := k * math.Exp(-r*maturity)
	call = s0*normCDF(d1) - discountedStrike*normCDF(d2)
	put = call + discountedStrike - s0
	return call, put
}

// BlackScholesRef returns the reference price for a single option kind.
func BlackScholesRef(s0, k, maturity, r, sigma float64, kind OptionKind) float64 {
	call, put := BlackScholes(s0, k, maturity, r, sigma)
	if kind == Call {
		return call
	}
	return put
}

// normCDF computes the cumulative distribution function of the standard
// normal distribution for a given value x using the error function.
// It returns a value between 0 and 1 representing the probability that a
// standard normal random variable is less than or equal to x.
func normCDF(x float64) float64 {
	return 0.5 * (1.0 + math.Erf(x/math.Sqrt2))
}
