package pricing

import "math"

// Lattice is a recombining binomial grid of size (M+1)x(M+1).
//
// Cell (j, t) holds the value after t time steps with j down-moves.
// Only the lower triangle j <= t describes real nodes; cells above the
// diagonal are left at zero and must never be read as prices. Use Node
// to distinguish "zero value" from "not a node".
type Lattice [][]float64

// NewLattice allocates an empty (steps+1)x(steps+1) grid.
func NewLattice(steps int) Lattice {
	grid := make(Lattice, steps+1)
	for j := range grid {
		grid[j] = make([]float64, steps+1)
	}
	return grid
}

// Steps returns the number of time steps M represented by the grid.
func (l Lattice) Steps() int { return len(l) - 1 }

// Node returns the value at (j, t) and whether that cell is a real node.
// Cells with j > t (or out of range) report ok=false.
func (l Lattice) Node(j, t int) (v float64, ok bool) {
	if j < 0 || t < 0 || t >= len(l) || j > t {
		return 0, false
	}
	return l[j][t], true
}

// BuildPriceLattice constructs the CRR underlying-price tree.
//
// Parameters:
//   - s0: spot price of the underlying asset
//   - sigma: volatility (annual, as a decimal)
//   - maturity: time to expiry in years
//   - steps: number of time steps M (must be >= 1)
//
// The tree recombines by construction: with dt = T/M, the up-factor is
// u = exp(sigma*sqrt(dt)) and the down-factor its reciprocal, so u*d = 1
// and price(j, t) = S0 * u^(t-j) * d^j.
//
// BuildPriceLattice performs no validation; callers are responsible for
// rejecting steps < 1 or non-positive s0/sigma/maturity before invoking it.
func BuildPriceLattice(s0, sigma, maturity float64, steps int) Lattice {
	dt := maturity / float64(steps)
	u := math.Exp(sigma * math.Sqrt(dt))
	d := 1 / u

	grid := NewLattice(steps)
	for t := 0; t <= steps; t++ {
		for j := 0; j <= t; j++ {
			grid[j][t] = s0 * math.Pow(u, float64(t-j)) * math.Pow(d, float64(j))
		}
	}
	return grid
}
