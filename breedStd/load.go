// breedStd load
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
package breedStd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	hjson "github.com/hjson/hjson-go"
)

// Column names allowed in the header line of points:
const (
	ColDay        = "day"
	ColBodyWeight = "bodyweight_kg"
	ColCumFeed    = "cumfeed_kg"
	ColYield      = "yield_prpn"
)

// Read a breed standard hjson file.  The file looks like
//
//	{
//	  breed: Ross 308
//	  species: poultry
//	  points: [
//	    "day, bodyweight_kg, yield_prpn"
//	    "0, 0.042, 0.0"
//	    ...
//	  ]
//	}
//
// The 1st line of points: is the header and must name day and bodyweight_kg.
func Load(fileName string) (*Curve, error) {

	byteValue, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to open breed standard file %s: %w", fileName, err)
	}

	c, err := Parse(byteValue)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return c, nil
}

// Parse the contents of a breed standard hjson file
func Parse(byteValue []byte) (*Curve, error) {

	var param map[string]interface{}

	if er := hjson.Unmarshal(byteValue, &param); er != nil {
		return nil, fmt.Errorf("%w: could not process the hjson: %v", ErrInvalidCurve, er)
	}

	breed, ok := param["breed"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: 'breed:' key not found", ErrInvalidCurve)
	}
	species, ok := param["species"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: 'species:' key not found", ErrInvalidCurve)
	}

	array, ok := param["points"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: 'points:' key not found", ErrInvalidCurve)
	}
	if len(array) < 1 {
		return nil, fmt.Errorf("%w: 'points:' is empty", ErrInvalidCurve)
	}

	// 1st row is the header
	h, ok := array[0].(string)
	if !ok {
		return nil, fmt.Errorf("%w: 'points:' header must be a string of column names", ErrInvalidCurve)
	}
	index := make(map[string]int)
	for i, name := range strings.Split(h, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if first, dup := index[name]; dup {
			return nil, fmt.Errorf("%w: 'points:' header names %s twice (columns %d and %d)", ErrInvalidCurve, name, first+1, i+1)
		}
		index[name] = i
	}
	for _, required := range []string{ColDay, ColBodyWeight} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("%w: 'points:' header is missing %s", ErrInvalidCurve, required)
		}
	}

	var cols Columns
	_, cols.Feed = index[ColCumFeed]
	_, cols.Yield = index[ColYield]

	var points []Point
	for i := 1; i < len(array); i++ {
		line, ok := array[i].(string)
		if !ok {
			return nil, fmt.Errorf("%w: points row %d is not a string", ErrInvalidCurve, i)
		}
		s := strings.Split(line, ",")
		if len(s) != len(index) {
			return nil, fmt.Errorf("%w: points row %d has %d values, header has %d", ErrInvalidCurve, i, len(s), len(index))
		}

		value := func(col string) (float64, error) {
			f, err := strconv.ParseFloat(strings.TrimSpace(s[index[col]]), 64)
			if err != nil {
				return 0, fmt.Errorf("%w: points row %d %s: %v", ErrInvalidCurve, i, col, err)
			}
			return f, nil
		}

		var p Point
		var err error
		if p.Day, err = value(ColDay); err != nil {
			return nil, err
		}
		if p.BodyWeightKg, err = value(ColBodyWeight); err != nil {
			return nil, err
		}
		if cols.Feed {
			if p.CumFeedIntakeKg, err = value(ColCumFeed); err != nil {
				return nil, err
			}
		}
		if cols.Yield {
			if p.YieldPrpn, err = value(ColYield); err != nil {
				return nil, err
			}
		}
		points = append(points, p)
	}

	return NewCurve(strings.TrimSpace(breed), strings.ToLower(strings.TrimSpace(species)), points, cols)
}
