// bod production
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
	"math"

	"github.com/gbads/bodEngine/breedStd"
)

// Body weight and carcass yield from the breed standard for the record's exposure.
// The scenario yield override wins over the breed standard yield.
func LookupBreedStandard(curve *breedStd.Curve, growth Growth, yieldOverride *float64, rec Record) (BreedStandard, error) {

	var b BreedStandard
	var err error

	switch g := growth.(type) {
	case GrowthByDays:
		b.DaysOnFeed = g.Days
		if rec.AvgDaysOnFeed > 0 {
			b.DaysOnFeed = rec.AvgDaysOnFeed
		}
		if b.BodyWeightKg, err = curve.WeightByDays(b.DaysOnFeed); err != nil {
			return b, err
		}
	case GrowthByFeedIntake:
		b.FeedIntakeKg = g.FeedKg
		if rec.AvgFeedIntakeKg > 0 {
			b.FeedIntakeKg = rec.AvgFeedIntakeKg
		}
		if b.BodyWeightKg, err = curve.WeightByFeed(b.FeedIntakeKg); err != nil {
			return b, err
		}
	default:
		return b, configError("unknown growth basis %T", growth)
	}

	if yieldOverride != nil {
		b.YieldPrpn = *yieldOverride
		return b, nil
	}
	if b.DaysOnFeed == 0 {
		return b, configError("no carcass yield for a %s lookup", growth.growthBasis())
	}
	if b.YieldPrpn, err = curve.YieldByDays(b.DaysOnFeed); err != nil {
		return b, err
	}
	return b, nil
}

// Ideal carcass weight (kg) and the reference production (tonnes) the
// slaughtered head would have yielded at the breed standard.
func IdealProduction(bodyWeightKg, yieldPrpn, headSlaughtered float64) (carcassKg, referenceTonnes float64, err error) {

	if math.IsNaN(yieldPrpn) || yieldPrpn < 0 || yieldPrpn > 1 {
		return 0, 0, configError("carcass yield %v not within [0,1]", yieldPrpn)
	}
	if math.IsNaN(headSlaughtered) || headSlaughtered < 0 {
		return 0, 0, degenerate("head slaughtered %v is negative", headSlaughtered)
	}

	carcassKg = bodyWeightKg * yieldPrpn
	referenceTonnes = carcassKg * headSlaughtered / 1000

	return carcassKg, referenceTonnes, nil
}

// Death loss in tonnes.  A supplied value is used as is, otherwise the head
// that were placed but never slaughtered are valued at the ideal carcass weight.
// A supplied value that is negative or not finite is degenerate.
func DeathLoss(rec Record, carcassKg float64) (float64, error) {
	if rec.DeathLossTonnes != nil {
		death := *rec.DeathLossTonnes
		if math.IsNaN(death) || math.IsInf(death, 0) || death < 0 {
			return 0, degenerate("death loss %v tonnes must be a non-negative number", death)
		}
		return death, nil
	}
	died := math.Max(rec.HeadPlaced-rec.HeadSlaughtered, 0)
	return died * carcassKg / 1000, nil
}
