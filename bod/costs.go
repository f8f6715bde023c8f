// bod costs
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

import "math"

// What the cost projection reads from earlier stages
type CostInput struct {
	HeadPlaced     float64
	RealizedTonnes float64
	GmaxTonnes     float64 // After correction
	YieldPrpn      float64
	IdealFCR       float64

	ScenarioFeedPrice *float64 // USD per tonne, wins when set
	RecordFeedPrice   float64  // USD per tonne, 0 means not observed

	Actual UnitCosts // USD per kg carcass
}

// Project the ideal per kg costs of the realized production.
//
// Head driven costs (chicks or piglets, land and housing, labor, medicine,
// other) scale with ideal head placed / head placed, i.e. realized / gmax.
// Feed follows weight gained, so the ideal feed cost comes straight from the
// ideal FCR at the feed price.
func ProjectCosts(in CostInput) (Costs, error) {

	var c Costs

	if !(in.HeadPlaced > 0) {
		return c, degenerate("head placed %v must be positive", in.HeadPlaced)
	}
	if !(in.GmaxTonnes > 0) {
		return c, degenerate("gmax %v tonnes must be positive", in.GmaxTonnes)
	}
	if !(in.RealizedTonnes > 0) {
		return c, degenerate("realized production %v tonnes must be positive", in.RealizedTonnes)
	}
	if !(in.YieldPrpn > 0) {
		return c, degenerate("carcass yield %v must be positive to convert carcass to live weight", in.YieldPrpn)
	}

	switch {
	case in.ScenarioFeedPrice != nil:
		c.FeedPriceUsdPerTonne = *in.ScenarioFeedPrice
	case in.RecordFeedPrice > 0:
		c.FeedPriceUsdPerTonne = in.RecordFeedPrice
	default:
		return c, configError("no feed price in the scenario or the record")
	}

	// Actual feed cost restated at the scenario price when both prices are known
	c.AdjustedFeedCost = in.Actual.Feed
	if in.ScenarioFeedPrice != nil && in.RecordFeedPrice > 0 {
		c.AdjustedFeedCost = in.Actual.Feed * *in.ScenarioFeedPrice / in.RecordFeedPrice
	}

	c.IdealHeadPlaced = in.HeadPlaced * (in.RealizedTonnes / in.GmaxTonnes)
	ratio := c.IdealHeadPlaced / in.HeadPlaced

	c.IdealFeedTonnes = in.RealizedTonnes / in.YieldPrpn * in.IdealFCR
	c.Ideal.Feed = c.IdealFeedTonnes * c.FeedPriceUsdPerTonne / (in.RealizedTonnes * 1000)

	c.Ideal.Chick = in.Actual.Chick * ratio
	c.Ideal.LandHousing = in.Actual.LandHousing * ratio
	c.Ideal.Labor = in.Actual.Labor * ratio
	c.Ideal.Med = in.Actual.Med * ratio
	c.Ideal.Other = in.Actual.Other * ratio

	actual := in.Actual
	actual.Feed = c.AdjustedFeedCost
	c.ActualTotal = actual.Total()
	c.IdealTotal = c.Ideal.Total()
	c.BurdenCostUsd = (c.ActualTotal - c.IdealTotal) * in.RealizedTonnes * 1000

	if math.IsNaN(c.BurdenCostUsd) || math.IsInf(c.BurdenCostUsd, 0) {
		return c, degenerate("cost projection is not finite")
	}

	return c, nil
}
