// sensitivity
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
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/remeh/sizedwaitgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/gbads/bodEngine/bod"
	"github.com/gbads/bodEngine/breedStd"
)

// Totals over the records at one achievable percentage
type Point_t struct {
	Pct       float64
	Rows      int
	Rejected  int
	Corrected int

	EfficiencyTonnes  float64
	GmaxTonnes        float64
	MorbidityTonnes   float64
	TotalBurdenTonnes float64
	BurdenCostUsd     float64

	MeanMorbidityShare   float64 // Morbidity / reference across rows
	StdDevMorbidityShare float64
}

var ErrGrid = errors.New("invalid sweep grid")

// steps evenly spaced percentages from..to.  Needs at least 2 steps and from < to.
func Grid(from, to float64, steps int) ([]float64, error) {
	if steps < 2 {
		return nil, fmt.Errorf("%w: %d steps, need at least 2", ErrGrid, steps)
	}
	if math.IsNaN(from) || math.IsNaN(to) || math.IsInf(from, 0) || math.IsInf(to, 0) || from >= to {
		return nil, fmt.Errorf("%w: from %v must be below to %v", ErrGrid, from, to)
	}
	return floats.Span(make([]float64, steps), from, to), nil
}

type result_t struct {
	i int
	p Point_t
}

// Run the species' records at every percentage in pcts, workers grid points at
// once.  Rows that fail are counted in Rejected and left out of the totals.
// Points come back in the order of pcts.
func Run(species bod.Species, records []bod.Record, curve *breedStd.Curve, scen bod.Scenario, pcts []float64, workers int) ([]Point_t, error) {

	scens := make([]bod.Scenario, len(pcts))
	for i, pct := range pcts {
		scens[i] = scen
		scens[i].Efficiency = bod.AchievablePercent{Pct: pct}
		if err := scens[i].Validate(species, curve); err != nil {
			return nil, fmt.Errorf("achievable %v%%: %w", pct, err)
		}
	}

	var rows []bod.Record
	for _, rec := range records {
		if rec.Species == species {
			rows = append(rows, rec)
		}
	}

	if workers < 1 {
		workers = 1
	}
	swg := sizedwaitgroup.New(workers)
	ch := make(chan result_t, len(pcts)) // Buffered channel for results

	for i := range pcts {
		swg.Add()
		go func(i int) {
			defer swg.Done()
			ch <- result_t{i, point(pcts[i], rows, curve, scens[i])}
		}(i)
	}

	swg.Wait()
	close(ch)

	points := make([]Point_t, len(pcts))
	for r := range ch {
		points[r.i] = r.p
	}

	return points, nil
}

func point(pct float64, rows []bod.Record, curve *breedStd.Curve, scen bod.Scenario) Point_t {

	p := Point_t{Pct: pct}
	var shares []float64

	for _, rec := range rows {
		r, err := bod.EvaluateRecord(rec, curve, scen)
		if err != nil {
			p.Rejected++
			continue
		}
		d := r.Decomposition
		p.Rows++
		if d.Corrected {
			p.Corrected++
		}
		p.EfficiencyTonnes += d.EfficiencyTonnes
		p.GmaxTonnes += d.GmaxTonnes
		p.MorbidityTonnes += d.MorbidityTonnes
		p.TotalBurdenTonnes += d.TotalBurdenTonnes
		p.BurdenCostUsd += r.Costs.BurdenCostUsd

		if d.ReferenceTonnes > 0 {
			shares = append(shares, d.MorbidityTonnes/d.ReferenceTonnes)
		}
	}

	switch len(shares) {
	case 0:
	case 1:
		p.MeanMorbidityShare = shares[0]
	default:
		p.MeanMorbidityShare, p.StdDevMorbidityShare = stat.MeanStdDev(shares, nil)
	}

	return p
}

// Write a table of the sweep
func Print(w io.Writer, points []Point_t) {

	fmt.Fprintln(w, "\t ______________________________________________________________________________________________")
	fmt.Fprintln(w, "\t| Achv%  | Rows | Rej | Corr |  Efficiency |        Gmax |   Morbidity | Morb share (sd)  | Burden USD   |")
	fmt.Fprintln(w, "\t|________|______|_____|______|_____________|_____________|_____________|__________________|______________|")
	for _, p := range points {
		fmt.Fprintf(w, "\t| %6.2f | %4d | %3d | %4d | %11.1f | %11.1f | %11.1f | %7.4f (%6.4f) | %12.0f |\n",
			p.Pct, p.Rows, p.Rejected, p.Corrected,
			p.EfficiencyTonnes, p.GmaxTonnes, p.MorbidityTonnes,
			p.MeanMorbidityShare, p.StdDevMorbidityShare, p.BurdenCostUsd)
	}
	fmt.Fprintln(w, "\t|______________________________________________________________________________________________|")
}
