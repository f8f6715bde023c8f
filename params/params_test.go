// params_test
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
package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbads/bodEngine/bod"
)

func TestLoadScenario(t *testing.T) {
	p, err := LoadScenario("testdata/baseline.hjson")
	require.NoError(t, err)

	assert.Equal(t, "Ethiopia 2020 baseline", p.Comment)
	require.Len(t, p.Scenarios, 2)

	poultry := p.Scenarios[bod.Poultry]
	assert.Equal(t, bod.GrowthByDays{Days: 42}, poultry.Growth)
	assert.Equal(t, bod.AchievablePercent{Pct: 90}, poultry.Efficiency)
	assert.Equal(t, 1.6, poultry.IdealFCR)
	require.NotNil(t, poultry.FeedPriceUsdPerTonne)
	assert.Equal(t, 400.0, *poultry.FeedPriceUsdPerTonne)
	assert.Nil(t, poultry.CarcassYield)

	swine := p.Scenarios[bod.Swine]
	assert.Equal(t, bod.GrowthByFeedIntake{FeedKg: 250}, swine.Growth)
	assert.Equal(t, bod.AchievableWeight{WeightKg: 110}, swine.Efficiency)
	assert.Equal(t, 2.6, swine.IdealFCR)
	require.NotNil(t, swine.CarcassYield)
	assert.Equal(t, 0.76, *swine.CarcassYield)

	require.NotNil(t, p.Sweep)
	assert.Equal(t, Sweep_t{From: 60, To: 120, Steps: 25}, *p.Sweep)
}

func TestLoadScenarioMissing(t *testing.T) {
	_, err := LoadScenario("testdata/nope.hjson")
	assert.Error(t, err)

	_, err = LoadScenario("testdata/no_species.hjson")
	assert.ErrorIs(t, err, ErrParams)
}

func TestParseScenarioErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not hjson", `{"poultry": {"growthBasis": "days, 42"`},
		{"section not an object", `{"poultry": "days, 42"}`},
		{"no growth basis", `{"poultry": {"efficiencyBasis": "percent, 90", "idealFCR": 1.6}}`},
		{"unknown growth basis", `{"poultry": {"growthBasis": "weeks, 6", "efficiencyBasis": "percent, 90", "idealFCR": 1.6}}`},
		{"unknown efficiency basis", `{"poultry": {"growthBasis": "days, 42", "efficiencyBasis": "ratio, 0.9", "idealFCR": 1.6}}`},
		{"bad basis value", `{"poultry": {"growthBasis": "days, six", "efficiencyBasis": "percent, 90", "idealFCR": 1.6}}`},
		{"no fcr", `{"poultry": {"growthBasis": "days, 42", "efficiencyBasis": "percent, 90"}}`},
		{"bad feed price", `{"poultry": {"growthBasis": "days, 42", "efficiencyBasis": "percent, 90", "idealFCR": 1.6, "feedPrice": "cheap"}}`},
		{"bad sweep", `{"poultry": {"growthBasis": "days, 42", "efficiencyBasis": "percent, 90", "idealFCR": 1.6}, "sweep": "120, 60, 10"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrParams)
		})
	}
}

// Loading does not range check; that is the engine's job
func TestParseScenarioLeavesRangesToValidate(t *testing.T) {
	p, err := ParseScenario([]byte(`{"poultry": {"growthBasis": "days, 42", "efficiencyBasis": "percent, 150", "idealFCR": 1.6}}`))
	require.NoError(t, err)
	assert.Equal(t, bod.AchievablePercent{Pct: 150}, p.Scenarios[bod.Poultry].Efficiency)
}
