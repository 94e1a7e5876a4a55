package data

import (
	"math"
	"math/rand"
	"time"
)

// synthDataProvider implements Provider generating synthetic data. Used when
// no market API key is configured, and in tests.
type synthDataProvider struct {
	secondary Provider
	rng       *rand.Rand
}

// NewSyntheticProvider returns a provider that simulates a gaussian random
// walk around a starting price. A fixed seed keeps runs reproducible.
func NewSyntheticProvider(seed int64) Provider {
	return &synthDataProvider{rng: rand.New(rand.NewSource(seed))}
}

func (p *synthDataProvider) Secondary() Provider { return p.secondary }

func (p *synthDataProvider) GetDailyBars(ticker string, lookbackDays int) ([]Bar, error) {
	if p.secondary != nil {
		return p.secondary.GetDailyBars(ticker, lookbackDays)
	}

	cur := time.Now().UTC().AddDate(0, 0, -lookbackDays)
	end := time.Now().UTC()
	price := 100.0 + float64(p.rng.Intn(200))

	var out []Bar
	for !cur.After(end) {
		if cur.Weekday() != time.Saturday && cur.Weekday() != time.Sunday {
			delta := p.rng.NormFloat64() * 0.01 * price
			open := price
			cls := price + delta
			high := math.Max(open, cls) + math.Abs(p.rng.NormFloat64()*0.3)
			low := math.Min(open, cls) - math.Abs(p.rng.NormFloat64()*0.3)
			out = append(out, Bar{Date: cur, Open: open, High: high, Low: low, Close: cls, Vol: float64(1000 + p.rng.Intn(5000))})
			price = cls
		}
		cur = cur.AddDate(0, 0, 1)
	}
	return out, nil
}
