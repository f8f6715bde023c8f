// bod efficiency
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

// Tonnes of the reference production lost to feed and management, independent of disease.
//
// Percent mode:  reference * (1 - pct/100)
// Weight mode:   (breed standard weight - achievable weight) * yield * head slaughtered / 1000
func EfficiencyLoss(eff Efficiency, referenceTonnes float64, b BreedStandard, headSlaughtered float64) (float64, error) {

	switch e := eff.(type) {
	case AchievablePercent:
		return referenceTonnes * (1 - e.Pct/100), nil
	case AchievableWeight:
		return (b.BodyWeightKg - e.WeightKg) * b.YieldPrpn * headSlaughtered / 1000, nil
	}
	return 0, configError("unknown efficiency basis %T", eff)
}

// The uncorrected waterfall.  Morbidity may come out positive here; see Correct.
func Decompose(referenceTonnes, efficiencyTonnes, realizedTonnes, deathLossTonnes float64) Decomposition {

	var d Decomposition

	d.ReferenceTonnes = referenceTonnes
	d.EfficiencyTonnes = efficiencyTonnes
	d.GmaxTonnes = d.ReferenceTonnes - d.EfficiencyTonnes
	d.RealizedTonnes = realizedTonnes
	d.DeathLossTonnes = deathLossTonnes
	d.TotalBurdenTonnes = d.GmaxTonnes - d.RealizedTonnes
	d.MorbidityTonnes = d.TotalBurdenTonnes - d.DeathLossTonnes

	return d
}

// Morbidity is never positive in output.  A positive morbidity is folded
// into efficiency and death loss is left as the whole burden.
// One pass on the original morbidity; applying it again changes nothing.
func Correct(d Decomposition) Decomposition {

	if d.MorbidityTonnes > 0 {
		d.EfficiencyTonnes += d.MorbidityTonnes
		d.GmaxTonnes = d.ReferenceTonnes - d.EfficiencyTonnes
		d.MorbidityTonnes = 0
		d.TotalBurdenTonnes = d.DeathLossTonnes
		d.Corrected = true
	}

	return d
}
