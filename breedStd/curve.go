// breedStd
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

// Package breedStd holds manufacturer breed standard growth curves and the
// lookups that turn days on feed or cumulative feed intake into the body
// weight (and carcass yield) an animal of that exposure should have reached.
package breedStd

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

var (
	ErrInvalidCurve  = errors.New("invalid breed standard curve")
	ErrOutOfRange    = errors.New("query outside breed standard range")
	ErrMissingColumn = errors.New("breed standard column not present")
)

// One row of a breed standard table
type Point struct {
	Day             float64 // Days on feed since placement
	BodyWeightKg    float64 // Live body weight at Day
	CumFeedIntakeKg float64 // Cumulative feed eaten to Day (swine tables)
	YieldPrpn       float64 // Carcass yield as a proportion of live weight (poultry tables)
}

// Which optional columns a table carries
type Columns struct {
	Feed  bool
	Yield bool
}

// Curve is immutable once built and safe for concurrent lookups.
type Curve struct {
	Breed   string
	Species string
	Columns Columns

	days    []float64
	weights []float64
	feeds   []float64
	yields  []float64

	weightByDay  interp.PiecewiseLinear
	weightByFeed interp.PiecewiseLinear
	yieldByDay   interp.PiecewiseLinear
}

// Build a curve from a breed standard table.
// Days must be strictly increasing, as must cumulative feed when present.
func NewCurve(breed string, species string, points []Point, cols Columns) (*Curve, error) {

	if len(points) < 2 {
		return nil, fmt.Errorf("%w: %s needs at least 2 points, has %d", ErrInvalidCurve, breed, len(points))
	}

	c := &Curve{Breed: breed, Species: species, Columns: cols}

	for _, p := range points {
		c.days = append(c.days, p.Day)
		c.weights = append(c.weights, p.BodyWeightKg)
		if cols.Feed {
			c.feeds = append(c.feeds, p.CumFeedIntakeKg)
		}
		if cols.Yield {
			c.yields = append(c.yields, p.YieldPrpn)
		}
	}

	if err := strictlyIncreasing("day", c.days); err != nil {
		return nil, fmt.Errorf("%s: %w", breed, err)
	}
	if floats.HasNaN(c.weights) || floats.Min(c.weights) < 0 {
		return nil, fmt.Errorf("%w: %s body weights must be non-negative numbers", ErrInvalidCurve, breed)
	}
	if cols.Feed {
		if err := strictlyIncreasing("cumulative feed", c.feeds); err != nil {
			return nil, fmt.Errorf("%s: %w", breed, err)
		}
	}
	if cols.Yield {
		if floats.HasNaN(c.yields) || floats.Min(c.yields) < 0 || floats.Max(c.yields) > 1 {
			return nil, fmt.Errorf("%w: %s yield proportions must be within [0,1]", ErrInvalidCurve, breed)
		}
	}

	// Fit panics on bad input; everything was checked above
	if err := c.weightByDay.Fit(c.days, c.weights); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCurve, err)
	}
	if cols.Feed {
		if err := c.weightByFeed.Fit(c.feeds, c.weights); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCurve, err)
		}
	}
	if cols.Yield {
		if err := c.yieldByDay.Fit(c.days, c.yields); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCurve, err)
		}
	}

	return c, nil
}

func strictlyIncreasing(name string, xs []float64) error {
	if floats.HasNaN(xs) {
		return fmt.Errorf("%w: %s column has a missing value", ErrInvalidCurve, name)
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return fmt.Errorf("%w: %s column not strictly increasing at row %d (%v after %v)",
				ErrInvalidCurve, name, i+1, xs[i], xs[i-1])
		}
	}
	return nil
}

// Range of days covered by the table
func (c *Curve) DayRange() (first, last float64) {
	return c.days[0], c.days[len(c.days)-1]
}

// Range of cumulative feed intake covered by the table
func (c *Curve) FeedRange() (first, last float64, err error) {
	if !c.Columns.Feed {
		return 0, 0, fmt.Errorf("%w: %s has no cumulative feed column", ErrMissingColumn, c.Breed)
	}
	return c.feeds[0], c.feeds[len(c.feeds)-1], nil
}

// Body weight (kg) after days on feed
func (c *Curve) WeightByDays(days float64) (float64, error) {
	if err := inRange("days on feed", days, c.days); err != nil {
		return 0, fmt.Errorf("%s: %w", c.Breed, err)
	}
	return c.weightByDay.Predict(days), nil
}

// Body weight (kg) after eating feedKg of feed
func (c *Curve) WeightByFeed(feedKg float64) (float64, error) {
	if !c.Columns.Feed {
		return 0, fmt.Errorf("%w: %s has no cumulative feed column", ErrMissingColumn, c.Breed)
	}
	if err := inRange("cumulative feed intake", feedKg, c.feeds); err != nil {
		return 0, fmt.Errorf("%s: %w", c.Breed, err)
	}
	return c.weightByFeed.Predict(feedKg), nil
}

// Carcass yield proportion after days on feed
func (c *Curve) YieldByDays(days float64) (float64, error) {
	if !c.Columns.Yield {
		return 0, fmt.Errorf("%w: %s has no carcass yield column", ErrMissingColumn, c.Breed)
	}
	if err := inRange("days on feed", days, c.days); err != nil {
		return 0, fmt.Errorf("%s: %w", c.Breed, err)
	}
	return c.yieldByDay.Predict(days), nil
}

// Lookups are never extrapolated or clamped to the end points
func inRange(name string, x float64, xs []float64) error {
	first, last := xs[0], xs[len(xs)-1]
	if math.IsNaN(x) || x < first || x > last {
		return fmt.Errorf("%w: %s %v not within [%v, %v]", ErrOutOfRange, name, x, first, last)
	}
	return nil
}

// Copy of the table rows
func (c *Curve) Points() []Point {
	pts := make([]Point, len(c.days))
	for i := range c.days {
		pts[i].Day = c.days[i]
		pts[i].BodyWeightKg = c.weights[i]
		if c.Columns.Feed {
			pts[i].CumFeedIntakeKg = c.feeds[i]
		}
		if c.Columns.Yield {
			pts[i].YieldPrpn = c.yields[i]
		}
	}
	return pts
}
