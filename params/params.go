// params
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
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	hjson "github.com/hjson/hjson-go"

	"github.com/gbads/bodEngine/bod"
)

var ErrParams = errors.New("invalid parameter file")

// Grid of achievable percentages for a sensitivity sweep, From..To inclusive
type Sweep_t struct {
	From  float64
	To    float64
	Steps int
}

// What a scenario hjson file holds.  Only the species present in the file
// have a scenario.
type Params_t struct {
	Comment   string
	Scenarios map[bod.Species]bod.Scenario
	Sweep     *Sweep_t
}

// Read a scenario hjson file.  The file looks like
//
//	{
//	  comment: Ethiopia 2020 baseline
//	  poultry: {
//	    growthBasis: "days, 42"
//	    efficiencyBasis: "percent, 90"
//	    idealFCR: 1.6
//	    feedPrice: 400
//	  }
//	  swine: {
//	    growthBasis: "feed, 250"
//	    efficiencyBasis: "weight, 110"
//	    idealFCR: 2.6
//	    carcassYield: 0.76
//	  }
//	  sweep: "60, 120, 25"
//	}
func LoadScenario(fileName string) (Params_t, error) {

	byteValue, err := os.ReadFile(fileName)
	if err != nil {
		return Params_t{}, fmt.Errorf("failed to open scenario file %s: %w", fileName, err)
	}

	p, err := ParseScenario(byteValue)
	if err != nil {
		return p, fmt.Errorf("%s: %w", fileName, err)
	}
	return p, nil
}

func ParseScenario(byteValue []byte) (Params_t, error) {

	var p Params_t
	var param map[string]interface{}

	if er := hjson.Unmarshal(byteValue, &param); er != nil {
		return p, fmt.Errorf("%w: could not process the hjson: %v", ErrParams, er)
	}

	if c, ok := param["comment"].(string); ok {
		p.Comment = c
	}

	p.Scenarios = make(map[bod.Species]bod.Scenario)
	for _, species := range []bod.Species{bod.Poultry, bod.Swine} {
		section, ok := param[string(species)]
		if !ok {
			continue
		}
		m, ok := section.(map[string]interface{})
		if !ok {
			return p, fmt.Errorf("%w: '%s:' is not an object", ErrParams, species)
		}
		s, err := readScenario(m)
		if err != nil {
			return p, fmt.Errorf("%s: %w", species, err)
		}
		p.Scenarios[species] = s
	}
	if len(p.Scenarios) == 0 {
		return p, fmt.Errorf("%w: neither 'poultry:' nor 'swine:' key found", ErrParams)
	}

	if sw, ok := param["sweep"]; ok {
		s, err := readSweep(sw)
		if err != nil {
			return p, err
		}
		p.Sweep = &s
	}

	return p, nil
}

func readScenario(m map[string]interface{}) (bod.Scenario, error) {

	var s bod.Scenario

	kind, v, err := basis(m, "growthBasis")
	if err != nil {
		return s, err
	}
	switch kind {
	case "days":
		s.Growth = bod.GrowthByDays{Days: v}
	case "feed":
		s.Growth = bod.GrowthByFeedIntake{FeedKg: v}
	default:
		return s, fmt.Errorf("%w: growthBasis %q is not days or feed", ErrParams, kind)
	}

	kind, v, err = basis(m, "efficiencyBasis")
	if err != nil {
		return s, err
	}
	switch kind {
	case "percent", "pct":
		s.Efficiency = bod.AchievablePercent{Pct: v}
	case "weight":
		s.Efficiency = bod.AchievableWeight{WeightKg: v}
	default:
		return s, fmt.Errorf("%w: efficiencyBasis %q is not percent or weight", ErrParams, kind)
	}

	fcr, ok, err := number(m, "idealFCR")
	if err != nil {
		return s, err
	}
	if !ok {
		return s, fmt.Errorf("%w: 'idealFCR:' key not found", ErrParams)
	}
	s.IdealFCR = fcr

	if f, ok, err := number(m, "feedPrice"); err != nil {
		return s, err
	} else if ok {
		s.FeedPriceUsdPerTonne = bod.Float(f)
	}

	if y, ok, err := number(m, "carcassYield"); err != nil {
		return s, err
	} else if ok {
		s.CarcassYield = bod.Float(y)
	}

	return s, nil
}

// "days, 42" style values
func basis(m map[string]interface{}, key string) (string, float64, error) {

	raw, ok := m[key].(string)
	if !ok {
		return "", 0, fmt.Errorf("%w: '%s:' key not found", ErrParams, key)
	}
	c := strings.Split(raw, ",")
	if len(c) != 2 {
		return "", 0, fmt.Errorf("%w: '%s:' wants \"kind, value\", got %q", ErrParams, key, raw)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(c[1]), 64)
	if err != nil {
		return "", 0, fmt.Errorf("%w: '%s:' %v", ErrParams, key, err)
	}
	return strings.ToLower(strings.TrimSpace(c[0])), v, nil
}

// Numbers may be written bare or quoted
func number(m map[string]interface{}, key string) (float64, bool, error) {

	raw, ok := m[key]
	if !ok {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case float64:
		return v, true, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false, fmt.Errorf("%w: '%s:' %v", ErrParams, key, err)
		}
		return f, true, nil
	}
	return 0, false, fmt.Errorf("%w: '%s:' is not a number", ErrParams, key)
}

func readSweep(raw interface{}) (Sweep_t, error) {

	var s Sweep_t

	str, ok := raw.(string)
	if !ok {
		return s, fmt.Errorf("%w: 'sweep:' wants \"from, to, steps\"", ErrParams)
	}
	c := strings.Split(str, ",")
	if len(c) != 3 {
		return s, fmt.Errorf("%w: 'sweep:' wants \"from, to, steps\", got %q", ErrParams, str)
	}

	var err error
	if s.From, err = strconv.ParseFloat(strings.TrimSpace(c[0]), 64); err != nil {
		return s, fmt.Errorf("%w: 'sweep:' %v", ErrParams, err)
	}
	if s.To, err = strconv.ParseFloat(strings.TrimSpace(c[1]), 64); err != nil {
		return s, fmt.Errorf("%w: 'sweep:' %v", ErrParams, err)
	}
	if s.Steps, err = strconv.Atoi(strings.TrimSpace(c[2])); err != nil {
		return s, fmt.Errorf("%w: 'sweep:' %v", ErrParams, err)
	}
	if s.Steps < 2 || s.To <= s.From {
		return s, fmt.Errorf("%w: 'sweep:' needs from < to and at least 2 steps", ErrParams)
	}
	return s, nil
}
