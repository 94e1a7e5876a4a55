package data

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSyntheticProviderGeneratesWeekdayBars(t *testing.T) {
	prov := NewSyntheticProvider(42)

	bars, err := prov.GetDailyBars("TEST", 30)
	require.NoError(t, err)
	require.NotEmpty(t, bars)

	for _, b := range bars {
		require.NotEqual(t, time.Saturday, b.Date.Weekday())
		require.NotEqual(t, time.Sunday, b.Date.Weekday())
		require.Positive(t, b.Close)
		require.GreaterOrEqual(t, b.High, b.Low)
	}
}

func TestSyntheticProviderSeedIsReproducible(t *testing.T) {
	a, err := NewSyntheticProvider(7).GetDailyBars("TEST", 10)
	require.NoError(t, err)
	b, err := NewSyntheticProvider(7).GetDailyBars("TEST", 10)
	require.NoError(t, err)

	require.Equal(t, Closes(a), Closes(b))
}

func TestClosesExtractsColumn(t *testing.T) {
	bars := []Bar{{Close: 1.5}, {Close: 2.5}}
	require.Equal(t, []float64{1.5, 2.5}, Closes(bars))
}
