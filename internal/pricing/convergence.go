package pricing

// ConvergencePoint pairs a step count with the CRR value computed at it.
type ConvergencePoint struct {
	Steps int     `json:"steps"`
	Value float64 `json:"value"`
}

// ConvergenceSteps returns the sampled step counts for a request with M
// steps: 10, 20, 30, ... up to and including max(10, M)+10.
func ConvergenceSteps(m int) []int {
	limit := m
	if limit < 10 {
		limit = 10
	}
	limit += 10

	var steps []int
	for s := 10; s <= limit; s += 10 {
		steps = append(steps, s)
	}
	return steps
}

// SampleConvergence revalues the option at increasing step counts so the
// CRR price can be compared against the Black-Scholes reference.
//
// Each sample is an independent, pure ValuateCRR call with no shared state;
// the loop is sequential but the samples have no data dependency on each
// other. Only the root values are retained, not the per-sample lattices.
func SampleConvergence(p Parameters) []ConvergencePoint {
	steps := ConvergenceSteps(p.Steps)
	points := make([]ConvergencePoint, 0, len(steps))
	for _, m := range steps {
		v := ValuateCRR(p.WithSteps(m))
		points = append(points, ConvergencePoint{Steps: m, Value: v.Value})
	}
	return points
}
