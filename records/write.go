// records
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
package records

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/gbads/bodEngine/bod"
)

// Derived columns, appended after InputColumns
var ResultColumns = []string{
	"bod_breedstd_days", "bod_breedstd_feedintake_kg", "bod_breedstd_bodyweight_kg", "bod_breedstd_yield_prpn",
	"bod_ideal_carcass_kg", "bod_reference_tonnes", "bod_efficiency_tonnes", "bod_gmax_tonnes",
	"bod_deathloss_tonnes", "bod_morbidity_tonnes", "bod_totalburden_tonnes", "bod_corrected",
	"ideal_feedprice_usdpertonne", "ideal_headplaced", "ideal_feed_tonnes",
	"ideal_feedcost_usdperkg", "ideal_chickcost_usdperkg", "ideal_landhousingcost_usdperkg",
	"ideal_laborcost_usdperkg", "ideal_medcost_usdperkg", "ideal_othercost_usdperkg",
	"acc_adjfeedcost_usdperkg", "acc_totalcost_usdperkg", "ideal_totalcost_usdperkg", "bod_burdencost_usd",
}

func ff(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func SaveResults(fileName string, results []bod.Result) error {

	f, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", fileName, err)
	}

	if err := WriteResults(f, results); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", fileName, err)
	}
	return f.Close()
}

func WriteResults(w io.Writer, results []bod.Result) error {

	cw := csv.NewWriter(w)

	header := append(append([]string{}, InputColumns...), ResultColumns...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		if err := cw.Write(row(r)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func row(r bod.Result) []string {

	rec := r.Record
	d := r.Decomposition
	c := r.Costs

	death := ""
	if rec.DeathLossTonnes != nil {
		death = ff(*rec.DeathLossTonnes)
	}

	return []string{
		rec.Country, string(rec.Species), strconv.Itoa(rec.Year),
		ff(rec.HeadPlaced), ff(rec.HeadSlaughtered), ff(rec.ProductionTonnes), death,
		ff(rec.AvgDaysOnFeed), ff(rec.AvgFeedIntakeKg), ff(rec.FeedPriceUsdPerTonne),
		ff(rec.Costs.Feed), ff(rec.Costs.Chick), ff(rec.Costs.LandHousing),
		ff(rec.Costs.Labor), ff(rec.Costs.Med), ff(rec.Costs.Other),

		ff(r.BreedStd.DaysOnFeed), ff(r.BreedStd.FeedIntakeKg), ff(r.BreedStd.BodyWeightKg), ff(r.BreedStd.YieldPrpn),
		ff(r.BreedStd.CarcassWeightKg), ff(d.ReferenceTonnes), ff(d.EfficiencyTonnes), ff(d.GmaxTonnes),
		ff(d.DeathLossTonnes), ff(d.MorbidityTonnes), ff(d.TotalBurdenTonnes), strconv.FormatBool(d.Corrected),
		ff(c.FeedPriceUsdPerTonne), ff(c.IdealHeadPlaced), ff(c.IdealFeedTonnes),
		ff(c.Ideal.Feed), ff(c.Ideal.Chick), ff(c.Ideal.LandHousing),
		ff(c.Ideal.Labor), ff(c.Ideal.Med), ff(c.Ideal.Other),
		ff(c.AdjustedFeedCost), ff(c.ActualTotal), ff(c.IdealTotal), ff(c.BurdenCostUsd),
	}
}

// Fixed width waterfall table, one line per result
func PrintTable(w io.Writer, results []bod.Result) {

	fmt.Fprintf(w, "                        _______________Waterfall (tonnes)_______________________________   | ______Cost (USD/kg)_____\n")
	fmt.Fprintf(w, "Country         Year Species  Reference Efficiency       Gmax  Realized  Death  Morbidity C |  Actual   Ideal    Burden USD\n")
	for _, r := range results {
		d := r.Decomposition
		corrected := " "
		if d.Corrected {
			corrected = "*"
		}
		fmt.Fprintf(w, "%-15.15s %4d %-7s %10.1f %10.1f %10.1f %9.1f %6.1f %10.1f %s | %7.3f %7.3f %13.0f\n",
			r.Record.Country,
			r.Record.Year,
			r.Record.Species,
			d.ReferenceTonnes,
			d.EfficiencyTonnes,
			d.GmaxTonnes,
			d.RealizedTonnes,
			d.DeathLossTonnes,
			d.MorbidityTonnes,
			corrected,
			r.Costs.ActualTotal,
			r.Costs.IdealTotal,
			r.Costs.BurdenCostUsd)
	}
}
