// summary
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
package summary

import (
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/gbads/bodEngine/bod"
)

// Columns of the result matrix
const (
	ColReference = iota
	ColEfficiency
	ColGmax
	ColRealized
	ColDeathLoss
	ColMorbidity
	ColTotalBurden
	ColBurdenCost
	nCols
)

var ColNames = []string{"reference", "efficiency", "gmax", "realized", "deathloss", "morbidity", "totalburden", "burdencost_usd"}

// Rows are results, columns are Col*.  Nil for no results.
func Matrix(results []bod.Result) *mat.Dense {

	if len(results) == 0 {
		return nil
	}

	m := mat.NewDense(len(results), nCols, nil)
	for i, r := range results {
		d := r.Decomposition
		m.SetRow(i, []float64{
			d.ReferenceTonnes,
			d.EfficiencyTonnes,
			d.GmaxTonnes,
			d.RealizedTonnes,
			d.DeathLossTonnes,
			d.MorbidityTonnes,
			d.TotalBurdenTonnes,
			r.Costs.BurdenCostUsd,
		})
	}
	return m
}

// Totals of a group of results.  Country and Year are empty for a species group.
type Group_t struct {
	Species   bod.Species
	Country   string
	Year      int
	Rows      int
	Corrected int
	Totals    []float64 // Indexed by Col*

	MeanBodyWeightKg float64 // Weighted by head slaughtered
	MeanYieldPrpn    float64 // Weighted by head slaughtered
}

// A column total as a proportion of the reference production
func (g Group_t) Share(col int) float64 {
	if g.Totals[ColReference] == 0 {
		return 0
	}
	return g.Totals[col] / g.Totals[ColReference]
}

func BySpecies(results []bod.Result) []Group_t {

	idx := make(map[bod.Species][]int)
	for i, r := range results {
		idx[r.Record.Species] = append(idx[r.Record.Species], i)
	}

	var groups []Group_t
	for s, rows := range idx {
		g := aggregate(results, rows)
		g.Species = s
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Species < groups[j].Species })

	return groups
}

type countryYear_t struct {
	country string
	year    int
	species bod.Species
}

func ByCountryYear(results []bod.Result) []Group_t {

	idx := make(map[countryYear_t][]int)
	for i, r := range results {
		k := countryYear_t{r.Record.Country, r.Record.Year, r.Record.Species}
		idx[k] = append(idx[k], i)
	}

	var groups []Group_t
	for k, rows := range idx {
		g := aggregate(results, rows)
		g.Country = k.country
		g.Year = k.year
		g.Species = k.species
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if a.Country != b.Country {
			return a.Country < b.Country
		}
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return a.Species < b.Species
	})

	return groups
}

func aggregate(results []bod.Result, rows []int) Group_t {

	subset := make([]bod.Result, len(rows))
	heads := make([]float64, len(rows))
	weights := make([]float64, len(rows))
	yields := make([]float64, len(rows))

	var g Group_t
	for k, i := range rows {
		r := results[i]
		subset[k] = r
		heads[k] = r.Record.HeadSlaughtered
		weights[k] = r.BreedStd.BodyWeightKg
		yields[k] = r.BreedStd.YieldPrpn
		if r.Decomposition.Corrected {
			g.Corrected++
		}
	}
	g.Rows = len(rows)

	m := Matrix(subset)
	g.Totals = make([]float64, nCols)
	for j := 0; j < nCols; j++ {
		g.Totals[j] = floats.Sum(mat.Col(nil, j, m))
	}

	if floats.Sum(heads) > 0 {
		g.MeanBodyWeightKg = stat.Mean(weights, heads)
		g.MeanYieldPrpn = stat.Mean(yields, heads)
	}

	return g
}

// Waterfall shares per group
func Print(w io.Writer, groups []Group_t) {

	fmt.Fprintf(w, "Species  Country         Year  Rows Corr   Reference  Effic%%  Death%%  Morb%%  Real%%   Burden USD\n")
	for _, g := range groups {
		year := ""
		if g.Year != 0 {
			year = fmt.Sprint(g.Year)
		}
		fmt.Fprintf(w, "%-8s %-15.15s %4s %5d %4d %11.1f %7.2f %7.2f %6.2f %6.2f %12.0f\n",
			g.Species,
			g.Country,
			year,
			g.Rows,
			g.Corrected,
			g.Totals[ColReference],
			g.Share(ColEfficiency)*100,
			g.Share(ColDeathLoss)*100,
			g.Share(ColMorbidity)*100,
			g.Share(ColRealized)*100,
			g.Totals[ColBurdenCost])
	}
}

// Pretty matrix format printout
func MatPrint(w io.Writer, X mat.Matrix) {
	fa := mat.Formatted(X, mat.Prefix(""), mat.Squeeze())
	fmt.Fprintf(w, "%v\n", fa)
}
