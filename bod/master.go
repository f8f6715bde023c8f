// bod master
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
	"sort"

	"github.com/remeh/sizedwaitgroup"

	"github.com/gbads/bodEngine/breedStd"
)

// Observer hears about every row of a pass.  With Workers > 1 it is called
// from several goroutines at once.
type Observer interface {
	Evaluated(r Result)
	Rejected(rec Record, err error)
}

// Engine runs the poultry and swine pipelines over a record set.
// The zero value evaluates rows one at a time with no observer.
type Engine struct {
	Workers  int // Rows evaluated at once; <= 1 runs in order on the caller's goroutine
	Observer Observer
}

// Poultry pipeline with the default engine
func EvaluatePoultry(records []Record, curve *breedStd.Curve, scen Scenario) ([]Result, error) {
	return Engine{}.Poultry(records, curve, scen)
}

// Swine pipeline with the default engine
func EvaluateSwine(records []Record, curve *breedStd.Curve, scen Scenario) ([]Result, error) {
	return Engine{}.Swine(records, curve, scen)
}

func (e Engine) Poultry(records []Record, curve *breedStd.Curve, scen Scenario) ([]Result, error) {
	return e.run(Poultry, records, curve, scen)
}

func (e Engine) Swine(records []Record, curve *breedStd.Curve, scen Scenario) ([]Result, error) {
	return e.run(Swine, records, curve, scen)
}

// Evaluate a record set holding more than one species.  Each species present
// needs a curve and a scenario.  Results come back in input order.
func (e Engine) Evaluate(records []Record, curves map[Species]*breedStd.Curve, scens map[Species]Scenario) ([]Result, error) {

	bySpecies := make(map[Species][]int)
	for i, rec := range records {
		bySpecies[rec.Species] = append(bySpecies[rec.Species], i)
	}

	var species []Species
	for s := range bySpecies {
		species = append(species, s)
	}
	sort.Slice(species, func(i, j int) bool { return species[i] < species[j] })

	// Check every species before touching any row
	for _, s := range species {
		if s != Poultry && s != Swine {
			return nil, configError("unknown species %q", s)
		}
		scen, ok := scens[s]
		if !ok {
			return nil, configError("no scenario for %s", s)
		}
		if err := scen.Validate(s, curves[s]); err != nil {
			return nil, err
		}
	}

	results := make([]Result, len(records))
	var errs []error
	for _, s := range species {
		idx := bySpecies[s]
		subset := make([]Record, len(idx))
		for k, i := range idx {
			subset[k] = records[i]
		}
		res, rowErrs := e.rows(s, subset, curves[s], scens[s])
		for k, i := range idx {
			results[i] = res[k]
			if rowErrs[k] != nil {
				rowErrs[k].Row = i
				errs = append(errs, rowErrs[k])
			}
		}
	}

	if len(errs) > 0 {
		sort.Slice(errs, func(i, j int) bool { return errs[i].(*RowError).Row < errs[j].(*RowError).Row })
		return nil, errors.Join(errs...)
	}
	return results, nil
}

// Evaluate a single record, validating the scenario first.  Callers that
// want to keep the good rows of a set with bad rows in it use this.
func EvaluateRecord(rec Record, curve *breedStd.Curve, scen Scenario) (Result, error) {
	if err := scen.Validate(rec.Species, curve); err != nil {
		return Result{Record: rec}, err
	}
	return evaluate(rec, curve, scen)
}

func (e Engine) run(species Species, records []Record, curve *breedStd.Curve, scen Scenario) ([]Result, error) {

	if err := scen.Validate(species, curve); err != nil {
		return nil, err
	}

	results, rowErrs := e.rows(species, records, curve, scen)

	var errs []error
	for _, re := range rowErrs {
		if re != nil {
			errs = append(errs, re)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return results, nil
}

// Evaluate every row, bounded to e.Workers at once
func (e Engine) rows(species Species, records []Record, curve *breedStd.Curve, scen Scenario) ([]Result, []*RowError) {

	results := make([]Result, len(records))
	rowErrs := make([]*RowError, len(records))

	one := func(i int) {
		rec := records[i]
		var err error
		if rec.Species != species {
			err = configError("%s record passed to the %s pipeline", rec.Species, species)
			results[i] = Result{Record: rec}
		} else {
			results[i], err = evaluate(rec, curve, scen)
		}

		if err != nil {
			rowErrs[i] = &RowError{Row: i, Country: rec.Country, Species: rec.Species, Year: rec.Year, Err: err}
			if e.Observer != nil {
				e.Observer.Rejected(rec, err)
			}
			return
		}
		if e.Observer != nil {
			e.Observer.Evaluated(results[i])
		}
	}

	if e.Workers <= 1 {
		for i := range records {
			one(i)
		}
		return results, rowErrs
	}

	swg := sizedwaitgroup.New(e.Workers)
	for i := range records {
		swg.Add()
		go func(i int) {
			defer swg.Done()
			one(i)
		}(i)
	}
	swg.Wait()

	return results, rowErrs
}

// The stages in dependency order: breed standard, ideal production,
// decomposition with its correction, then costs.
func evaluate(rec Record, curve *breedStd.Curve, scen Scenario) (Result, error) {

	r := Result{Record: rec}

	b, err := LookupBreedStandard(curve, scen.Growth, scen.CarcassYield, rec)
	if err != nil {
		return r, fmt.Errorf("breed standard: %w", err)
	}

	b.CarcassWeightKg, r.Decomposition.ReferenceTonnes, err = IdealProduction(b.BodyWeightKg, b.YieldPrpn, rec.HeadSlaughtered)
	if err != nil {
		return r, fmt.Errorf("ideal production: %w", err)
	}
	r.BreedStd = b

	eff, err := EfficiencyLoss(scen.Efficiency, r.Decomposition.ReferenceTonnes, b, rec.HeadSlaughtered)
	if err != nil {
		return r, fmt.Errorf("efficiency: %w", err)
	}

	death, err := DeathLoss(rec, b.CarcassWeightKg)
	if err != nil {
		return r, fmt.Errorf("death loss: %w", err)
	}

	d := Decompose(r.Decomposition.ReferenceTonnes, eff, rec.ProductionTonnes, death)
	r.Decomposition = Correct(d)

	r.Costs, err = ProjectCosts(CostInput{
		HeadPlaced:        rec.HeadPlaced,
		RealizedTonnes:    r.Decomposition.RealizedTonnes,
		GmaxTonnes:        r.Decomposition.GmaxTonnes,
		YieldPrpn:         b.YieldPrpn,
		IdealFCR:          scen.IdealFCR,
		ScenarioFeedPrice: scen.FeedPriceUsdPerTonne,
		RecordFeedPrice:   rec.FeedPriceUsdPerTonne,
		Actual:            rec.Costs,
	})
	if err != nil {
		return r, fmt.Errorf("costs: %w", err)
	}

	return r, nil
}
