// bod scenario
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
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/gbads/bodEngine/breedStd"
)

// How the breed standard is entered: by days on feed or by cumulative feed intake
type Growth interface {
	growthBasis() string
}

// Look up the breed standard at Days on feed.  A record's observed AvgDaysOnFeed wins.
type GrowthByDays struct {
	Days float64 `validate:"gt=0"`
}

// Look up the breed standard at FeedKg cumulative intake.  A record's observed AvgFeedIntakeKg wins.
type GrowthByFeedIntake struct {
	FeedKg float64 `validate:"gt=0"`
}

func (GrowthByDays) growthBasis() string       { return "days on feed" }
func (GrowthByFeedIntake) growthBasis() string { return "feed intake" }

// What production is achievable without disease
type Efficiency interface {
	efficiencyBasis() string
}

// Percent of the breed standard reference production.  Above 100 allows
// management that beats the breed standard.
type AchievablePercent struct {
	Pct float64 `validate:"gte=0,lte=120"`
}

// Live weight at slaughter achievable without disease (swine)
type AchievableWeight struct {
	WeightKg float64 `validate:"gt=0"`
}

func (AchievablePercent) efficiencyBasis() string { return "achievable percent" }
func (AchievableWeight) efficiencyBasis() string  { return "achievable weight" }

// Scenario holds the dashboard slider values for one calculation pass.
type Scenario struct {
	Growth     Growth     `validate:"-"`
	Efficiency Efficiency `validate:"-"`

	FeedPriceUsdPerTonne *float64 `validate:"omitempty,gt=0"`         // nil means use each record's price
	IdealFCR             float64  `validate:"gt=0"`                   // kg feed per kg live weight gain
	CarcassYield         *float64 `validate:"omitempty,gte=0,lte=1"` // Overrides the breed standard yield
}

var validate = validator.New()

// Check the scenario is complete and within range for species on curve.
func (s Scenario) Validate(species Species, curve *breedStd.Curve) error {

	if err := validateStruct(s); err != nil {
		return err
	}

	if curve == nil {
		return configError("no breed standard supplied for %s", species)
	}
	if curve.Species != "" {
		if cs, err := ParseSpecies(curve.Species); err != nil || cs != species {
			return configError("breed standard %s is for %s, not %s", curve.Breed, curve.Species, species)
		}
	}

	switch g := s.Growth.(type) {
	case nil:
		return configError("%s needs days on feed or feed intake", species)
	case GrowthByDays:
		if err := validateStruct(g); err != nil {
			return err
		}
	case GrowthByFeedIntake:
		if species != Swine {
			return configError("feed intake lookup is only available for swine")
		}
		if err := validateStruct(g); err != nil {
			return err
		}
		if !curve.Columns.Feed {
			return configError("breed standard %s has no cumulative feed column for a feed intake lookup", curve.Breed)
		}
	default:
		return configError("unknown growth basis %T", g)
	}

	switch e := s.Efficiency.(type) {
	case nil:
		return configError("%s needs an achievable percent or achievable weight", species)
	case AchievablePercent:
		if err := validateStruct(e); err != nil {
			return err
		}
	case AchievableWeight:
		if species != Swine {
			return configError("achievable weight is only available for swine")
		}
		if err := validateStruct(e); err != nil {
			return err
		}
	default:
		return configError("unknown efficiency basis %T", e)
	}

	// Yield comes from the override, or from the breed standard by days on feed
	if s.CarcassYield == nil {
		if _, byDays := s.Growth.(GrowthByDays); !byDays || !curve.Columns.Yield {
			return configError("%s needs a carcass yield: breed standard %s has no yield for a %s lookup",
				species, curve.Breed, s.Growth.growthBasis())
		}
	}

	return nil
}

// Run go-playground validation and report failures as configuration errors
func validateStruct(i interface{}) error {
	err := validate.Struct(i)
	if err == nil {
		return nil
	}
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrs {
			messages = append(messages, fmt.Sprintf(
				"field '%s' failed validation: %s=%s (value: '%v')",
				e.Namespace(),
				e.Tag(),
				e.Param(),
				e.Value(),
			))
		}
		return configError("%s", strings.Join(messages, "; "))
	}
	return configError("%v", err)
}

// Convenience for the optional scenario values
func Float(f float64) *float64 {
	return &f
}
