// master_test
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
package bod

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbads/bodEngine/breedStd"
)

func broilerRecord(country string, year int, realized float64) Record {
	return Record{
		Country:              country,
		Species:              Poultry,
		Year:                 year,
		HeadPlaced:           1.05e6,
		HeadSlaughtered:      1e6,
		ProductionTonnes:     realized,
		FeedPriceUsdPerTonne: 500,
		Costs:                UnitCosts{Feed: 0.9, Chick: 0.35, LandHousing: 0.1, Labor: 0.12, Med: 0.05, Other: 0.08},
	}
}

func growerRecord(country string, year int) Record {
	return Record{
		Country:              country,
		Species:              Swine,
		Year:                 year,
		HeadPlaced:           52000,
		HeadSlaughtered:      50000,
		ProductionTonnes:     3600,
		AvgFeedIntakeKg:      280,
		FeedPriceUsdPerTonne: 310,
		Costs:                UnitCosts{Feed: 1.1, Chick: 0.4, LandHousing: 0.15, Labor: 0.2, Med: 0.06, Other: 0.1},
	}
}

func TestEvaluatePoultry(t *testing.T) {
	records := []Record{
		broilerRecord("Ethiopia", 2020, 1800),
		broilerRecord("Ethiopia", 2021, 1600),
	}

	res, err := EvaluatePoultry(records, broilerCurve(t), poultryScenario())
	require.NoError(t, err)
	require.Len(t, res, 2)

	// 2.86 kg at day 42 with 72.8% yield
	r := res[0]
	assert.InDelta(t, 2.86, r.BreedStd.BodyWeightKg, 1e-12)
	assert.InDelta(t, 0.728, r.BreedStd.YieldPrpn, 1e-12)
	assert.InDelta(t, 2.08208, r.BreedStd.CarcassWeightKg, 1e-12)

	d := r.Decomposition
	assert.InDelta(t, 2082.08, d.ReferenceTonnes, 1e-9)
	assert.InDelta(t, 208.208, d.EfficiencyTonnes, 1e-9)
	assert.InDelta(t, 1873.872, d.GmaxTonnes, 1e-9)
	assert.InDelta(t, 104.104, d.DeathLossTonnes, 1e-9)
	assert.InDelta(t, 73.872, d.TotalBurdenTonnes, 1e-9)
	assert.InDelta(t, -30.232, d.MorbidityTonnes, 1e-9)
	assert.False(t, d.Corrected)

	// Realized 1600 leaves a positive morbidity before correction
	d = res[1].Decomposition
	assert.True(t, d.Corrected)
	assert.Equal(t, 0.0, d.MorbidityTonnes)
	assert.Equal(t, d.DeathLossTonnes, d.TotalBurdenTonnes)
	assert.InDelta(t, 377.976, d.EfficiencyTonnes, 1e-9)
	assert.InDelta(t, 1704.104, d.GmaxTonnes, 1e-9)
	assert.Equal(t, d.ReferenceTonnes-d.EfficiencyTonnes, d.GmaxTonnes)
}

// Costs are projected from the corrected gmax
func TestEvaluatePoultryCostsFollowCorrection(t *testing.T) {
	res, err := EvaluatePoultry([]Record{broilerRecord("Ethiopia", 2021, 1600)}, broilerCurve(t), poultryScenario())
	require.NoError(t, err)

	r := res[0]
	c := r.Costs
	assert.Equal(t, r.Record.HeadPlaced*(r.Decomposition.RealizedTonnes/r.Decomposition.GmaxTonnes), c.IdealHeadPlaced)
	assert.Equal(t, 400.0, c.FeedPriceUsdPerTonne)
	assert.InDelta(t, 0.9*400/500, c.AdjustedFeedCost, 1e-12)
	assert.InDelta(t, 1600/0.728*1.6, c.IdealFeedTonnes, 1e-9)
	assert.Less(t, c.Ideal.Chick, r.Record.Costs.Chick)
	assert.InDelta(t, (c.ActualTotal-c.IdealTotal)*1600*1000, c.BurdenCostUsd, 1e-6)
}

func TestEvaluateSwineDualModeEquivalence(t *testing.T) {
	curve := growerCurve(t)
	records := []Record{growerRecord("Vietnam", 2019), growerRecord("Vietnam", 2020)}

	byPct := Scenario{
		Growth:       GrowthByFeedIntake{FeedKg: 250},
		Efficiency:   AchievablePercent{Pct: 92},
		IdealFCR:     2.6,
		CarcassYield: Float(0.76),
	}
	pctRes, err := EvaluateSwine(records, curve, byPct)
	require.NoError(t, err)

	// 105 kg at 280 kg of feed
	assert.InDelta(t, 105, pctRes[0].BreedStd.BodyWeightKg, 1e-9)

	byWt := byPct
	byWt.Efficiency = AchievableWeight{WeightKg: pctRes[0].BreedStd.BodyWeightKg * 92 / 100}
	wtRes, err := EvaluateSwine(records, curve, byWt)
	require.NoError(t, err)

	for i := range records {
		assert.InDelta(t, pctRes[i].Decomposition.EfficiencyTonnes, wtRes[i].Decomposition.EfficiencyTonnes, 1e-6)
		assert.InDelta(t, pctRes[i].Decomposition.GmaxTonnes, wtRes[i].Decomposition.GmaxTonnes, 1e-6)
	}
}

func TestEvaluateConfigurationFailsFast(t *testing.T) {
	scen := poultryScenario()
	scen.Efficiency = nil

	res, err := EvaluatePoultry([]Record{broilerRecord("Kenya", 2020, 1800)}, broilerCurve(t), scen)
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Nil(t, res)
}

func TestEvaluateReportsRowErrors(t *testing.T) {
	bad := broilerRecord("Kenya", 2021, 1800)
	bad.HeadPlaced = 0
	far := broilerRecord("Kenya", 2022, 1800)
	far.AvgDaysOnFeed = 70

	res, err := EvaluatePoultry([]Record{broilerRecord("Kenya", 2020, 1800), bad, far}, broilerCurve(t), poultryScenario())
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrDegenerateInput)
	assert.ErrorIs(t, err, ErrOutOfRange)

	var rowErr *RowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 1, rowErr.Row)
	assert.Equal(t, 2021, rowErr.Year)
}

func TestEvaluateRejectsBadDeathLoss(t *testing.T) {
	tests := []struct {
		name  string
		death float64
	}{
		{"not a number", math.NaN()},
		{"negative infinity", math.Inf(-1)},
		{"positive infinity", math.Inf(1)},
		{"negative", -500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := broilerRecord("Kenya", 2020, 1800)
			rec.DeathLossTonnes = Float(tt.death)

			res, err := EvaluatePoultry([]Record{rec}, broilerCurve(t), poultryScenario())
			assert.ErrorIs(t, err, ErrDegenerateInput)
			assert.Nil(t, res)

			_, err = EvaluateRecord(rec, broilerCurve(t), poultryScenario())
			assert.ErrorIs(t, err, ErrDegenerateInput)
		})
	}
}

func TestEvaluateRecordKeepsGoodRows(t *testing.T) {
	curve := broilerCurve(t)
	scen := poultryScenario()

	bad := broilerRecord("Kenya", 2021, 0)
	_, err := EvaluateRecord(bad, curve, scen)
	assert.ErrorIs(t, err, ErrDegenerateInput)

	r, err := EvaluateRecord(broilerRecord("Kenya", 2020, 1800), curve, scen)
	require.NoError(t, err)
	assert.Greater(t, r.Decomposition.GmaxTonnes, 0.0)
}

func TestEvaluateWrongSpeciesRow(t *testing.T) {
	_, err := EvaluatePoultry([]Record{growerRecord("Vietnam", 2020)}, broilerCurve(t), poultryScenario())
	assert.ErrorIs(t, err, ErrConfiguration)
}

type countingObserver struct {
	mu        sync.Mutex
	evaluated int
	rejected  int
}

func (o *countingObserver) Evaluated(Result) {
	o.mu.Lock()
	o.evaluated++
	o.mu.Unlock()
}

func (o *countingObserver) Rejected(Record, error) {
	o.mu.Lock()
	o.rejected++
	o.mu.Unlock()
}

func TestEngineWorkersMatchSequential(t *testing.T) {
	curve := broilerCurve(t)
	scen := poultryScenario()

	var records []Record
	for i := 0; i < 60; i++ {
		rec := broilerRecord(fmt.Sprintf("C%02d", i), 2000+i%20, 1500+float64(i)*7)
		rec.AvgDaysOnFeed = 30 + float64(i%20)
		records = append(records, rec)
	}

	seq, err := Engine{}.Poultry(records, curve, scen)
	require.NoError(t, err)

	obs := &countingObserver{}
	par, err := Engine{Workers: 8, Observer: obs}.Poultry(records, curve, scen)
	require.NoError(t, err)

	assert.Equal(t, seq, par)
	assert.Equal(t, 60, obs.evaluated)
	assert.Equal(t, 0, obs.rejected)
}

func TestEngineEvaluateMixedSpecies(t *testing.T) {
	curves := map[Species]*breedStd.Curve{Poultry: broilerCurve(t), Swine: growerCurve(t)}
	scens := map[Species]Scenario{
		Poultry: poultryScenario(),
		Swine: {
			Growth:       GrowthByFeedIntake{FeedKg: 250},
			Efficiency:   AchievablePercent{Pct: 92},
			IdealFCR:     2.6,
			CarcassYield: Float(0.76),
		},
	}
	records := []Record{
		growerRecord("Vietnam", 2020),
		broilerRecord("Vietnam", 2020, 1800),
		growerRecord("Vietnam", 2021),
	}

	res, err := Engine{Workers: 2}.Evaluate(records, curves, scens)
	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, Swine, res[0].Record.Species)
	assert.Equal(t, Poultry, res[1].Record.Species)
	assert.Equal(t, 2021, res[2].Record.Year)

	poultryOnly, err := EvaluatePoultry(records[1:2], curves[Poultry], scens[Poultry])
	require.NoError(t, err)
	assert.Equal(t, poultryOnly[0], res[1])

	// Row numbers refer to the whole set, not the species subset
	bad := growerRecord("Vietnam", 2022)
	bad.HeadPlaced = 0
	_, err = Engine{}.Evaluate(append(records, bad), curves, scens)
	var rowErr *RowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 3, rowErr.Row)
	assert.ErrorIs(t, err, ErrDegenerateInput)

	delete(scens, Swine)
	_, err = Engine{}.Evaluate(records, curves, scens)
	assert.ErrorIs(t, err, ErrConfiguration)
}
