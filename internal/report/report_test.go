package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/contactkeval/option-lattice/internal/config"
	"github.com/contactkeval/option-lattice/internal/engine"
	"github.com/contactkeval/option-lattice/internal/pricing"
	"github.com/contactkeval/option-lattice/internal/testutil"
)

func fixtureResult(t *testing.T) *engine.Result {
	t.Helper()
	cfg := &config.Config{Scenario: testutil.PutScenario()}
	res, err := engine.New(cfg, nil).Run()
	require.NoError(t, err)
	return res
}

// The CSV artifacts are byte-stable for a fixed scenario; regenerate with
// go test ./internal/report -update when the format changes deliberately.
func TestWriteAllGoldenCSV(t *testing.T) {
	res := fixtureResult(t)
	dir := t.TempDir()
	require.NoError(t, WriteAll(res, dir))

	g := goldie.New(t)
	for _, name := range []string{"convergence", "prices", "values"} {
		b, err := os.ReadFile(filepath.Join(dir, name+".csv"))
		require.NoError(t, err)
		g.Assert(t, name, b)
	}
}

func TestWriteJSONRoundTrips(t *testing.T) {
	res := fixtureResult(t)
	dir := t.TempDir()
	require.NoError(t, WriteJSON(res, dir))

	b, err := os.ReadFile(filepath.Join(dir, "result.json"))
	require.NoError(t, err)

	var back engine.Result
	require.NoError(t, json.Unmarshal(b, &back))
	require.Equal(t, res.Valuation.Value, back.Valuation.Value)
	require.Equal(t, res.Valuation.Q, back.Valuation.Q)
	require.Equal(t, res.Convergence, back.Convergence)
	require.Equal(t, res.Valuation.Values, back.Valuation.Values)
}

func TestWriteLatticeCSVBlanksAboveDiagonal(t *testing.T) {
	grid := pricing.BuildPriceLattice(100, 0.2, 1, 2)
	path := filepath.Join(t.TempDir(), "grid.csv")
	require.NoError(t, WriteLatticeCSV(grid, path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(b), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "100.0000", strings.Split(lines[0], ",")[0])

	// Row 1 has no node at t=0, row 2 none before t=2.
	require.True(t, strings.HasPrefix(lines[1], ","))
	require.True(t, strings.HasPrefix(lines[2], ",,"))

	cells := strings.Split(lines[2], ",")
	require.Equal(t, "", cells[0])
	require.Equal(t, "", cells[1])
	require.NotEqual(t, "", cells[2])
}
