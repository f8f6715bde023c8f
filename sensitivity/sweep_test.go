// sweep_test
/*
Copyright 2021 Bruce Golden and Matt Spangler

Permission is hereby granted, free of charge, to any person obtaining a copy of
this software and associated documentation files (the "Software"), to deal in
the Software without restriction, including without limitation the rights to
use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
of the Software, and to permit persons to whom the Software is furnished to do
so, subject to the following conditions:
The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/
package sensitivity

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbads/bodEngine/bod"
	"github.com/gbads/bodEngine/breedStd"
)

func fixtures(t *testing.T) (*breedStd.Curve, bod.Scenario, []bod.Record) {
	t.Helper()

	curve, err := breedStd.Load("../breedStd/testdata/ross308.hjson")
	require.NoError(t, err)

	scen := bod.Scenario{
		Growth:               bod.GrowthByDays{Days: 42},
		Efficiency:           bod.AchievablePercent{Pct: 90},
		FeedPriceUsdPerTonne: bod.Float(400),
		IdealFCR:             1.6,
	}

	recs := []bod.Record{
		{Country: "Kenya", Species: bod.Poultry, Year: 2020, HeadPlaced: 1.05e6, HeadSlaughtered: 1e6, ProductionTonnes: 1800, Costs: bod.UnitCosts{Feed: 0.9}},
		{Country: "Kenya", Species: bod.Poultry, Year: 2021, HeadPlaced: 1.1e6, HeadSlaughtered: 1e6, ProductionTonnes: 1650, Costs: bod.UnitCosts{Feed: 0.95}},
		{Country: "Ghana", Species: bod.Poultry, Year: 2021, HeadPlaced: 0, HeadSlaughtered: 1e6, ProductionTonnes: 1700},
		{Country: "Ghana", Species: bod.Swine, Year: 2021, HeadPlaced: 100, HeadSlaughtered: 90, ProductionTonnes: 7},
	}
	return curve, scen, recs
}

func TestGrid(t *testing.T) {
	g, err := Grid(60, 120, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{60, 75, 90, 105, 120}, g)
}

func TestGridRejectsBadBounds(t *testing.T) {
	tests := []struct {
		name     string
		from, to float64
		steps    int
	}{
		{"no steps", 60, 120, 0},
		{"one step", 60, 120, 1},
		{"negative steps", 60, 120, -3},
		{"reversed", 120, 60, 5},
		{"empty range", 90, 90, 5},
		{"not a number", math.NaN(), 120, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Grid(tt.from, tt.to, tt.steps)
			assert.ErrorIs(t, err, ErrGrid)
			assert.Nil(t, g)
		})
	}
}

func TestRun(t *testing.T) {
	curve, scen, recs := fixtures(t)
	pcts, err := Grid(60, 120, 13)
	require.NoError(t, err)

	points, err := Run(bod.Poultry, recs, curve, scen, pcts, 4)
	require.NoError(t, err)
	require.Len(t, points, len(pcts))

	for i, p := range points {
		assert.Equal(t, pcts[i], p.Pct)
		assert.Equal(t, 2, p.Rows, "pct %v", p.Pct)
		assert.Equal(t, 1, p.Rejected, "pct %v", p.Pct)
		if i > 0 {
			assert.LessOrEqual(t, p.EfficiencyTonnes, points[i-1].EfficiencyTonnes+1e-9)
			assert.GreaterOrEqual(t, p.GmaxTonnes, points[i-1].GmaxTonnes-1e-9)
		}
		assert.LessOrEqual(t, p.MorbidityTonnes, 0.0)
	}

	// At 120% gmax overshoots realized plus death loss on both rows
	last := points[len(points)-1]
	assert.Equal(t, 2, last.Corrected)
	assert.Equal(t, 0.0, last.MorbidityTonnes)
	assert.Equal(t, 0, points[0].Corrected)
}

func TestRunMatchesSequential(t *testing.T) {
	curve, scen, recs := fixtures(t)
	pcts, err := Grid(80, 100, 9)
	require.NoError(t, err)

	seq, err := Run(bod.Poultry, recs, curve, scen, pcts, 1)
	require.NoError(t, err)
	par, err := Run(bod.Poultry, recs, curve, scen, pcts, 8)
	require.NoError(t, err)
	assert.Equal(t, seq, par)
}

func TestRunRejectsBadGrid(t *testing.T) {
	curve, scen, recs := fixtures(t)

	_, err := Run(bod.Poultry, recs, curve, scen, []float64{90, 130}, 2)
	assert.ErrorIs(t, err, bod.ErrConfiguration)

	_, err = Run(bod.Swine, recs, curve, scen, []float64{90}, 2)
	assert.ErrorIs(t, err, bod.ErrConfiguration)
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, []Point_t{{Pct: 90, Rows: 2, BurdenCostUsd: 1234}})
	assert.Contains(t, buf.String(), " 90.00 ")
	assert.Equal(t, 5, strings.Count(buf.String(), "\n"))
}
