// bod record
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

// Package bod decomposes realized poultry and swine production into ideal
// production, efficiency loss, death loss and morbidity, and projects the
// ideal (disease free) cost of producing the realized output.
package bod

import (
	"fmt"
	"strings"
)

type Species string

const (
	Poultry Species = "poultry"
	Swine   Species = "swine"
)

// Accept the names the ETL uses for each species
func ParseSpecies(s string) (Species, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "poultry", "broiler", "broilers", "chicken", "chickens":
		return Poultry, nil
	case "swine", "pig", "pigs", "hog", "hogs":
		return Swine, nil
	}
	return "", fmt.Errorf("unknown species %q", s)
}

// Per kg of carcass costs in USD, one per cost category
type UnitCosts struct {
	Feed        float64
	Chick       float64 // Chick or piglet
	LandHousing float64
	Labor       float64
	Med         float64
	Other       float64
}

func (u UnitCosts) Total() float64 {
	return u.Feed + u.Chick + u.LandHousing + u.Labor + u.Med + u.Other
}

// One country/species/year row of accumulated (acc_) actuals from the ETL.
// The engine never modifies a Record.
type Record struct {
	Country string
	Species Species
	Year    int

	HeadPlaced       float64
	HeadSlaughtered  float64
	ProductionTonnes float64  // Realized carcass production
	DeathLossTonnes  *float64 // nil means derive from head placed - head slaughtered

	AvgDaysOnFeed   float64 // 0 means not observed
	AvgFeedIntakeKg float64 // 0 means not observed

	FeedPriceUsdPerTonne float64 // 0 means not observed
	Costs                UnitCosts
}

// Breed standard values for the exposure of a record
type BreedStandard struct {
	DaysOnFeed      float64 // Exposure used for the lookup, 0 when looked up by feed
	FeedIntakeKg    float64 // Exposure used for the lookup, 0 when looked up by days
	BodyWeightKg    float64
	YieldPrpn       float64
	CarcassWeightKg float64
}

// The production waterfall from reference (ideal) production down to
// realized production, in tonnes of carcass.
type Decomposition struct {
	ReferenceTonnes   float64
	EfficiencyTonnes  float64
	GmaxTonnes        float64
	RealizedTonnes    float64
	DeathLossTonnes   float64
	TotalBurdenTonnes float64
	MorbidityTonnes   float64
	Corrected         bool // Efficiency absorbed a positive morbidity
}

// Ideal (zero disease) costs of the realized output
type Costs struct {
	FeedPriceUsdPerTonne float64 // Price used for the ideal feed cost
	AdjustedFeedCost     float64 // Actual feed cost per kg at the scenario feed price
	IdealHeadPlaced      float64
	IdealFeedTonnes      float64
	Ideal                UnitCosts
	ActualTotal          float64 // USD per kg
	IdealTotal           float64 // USD per kg
	BurdenCostUsd        float64 // (ActualTotal - IdealTotal) over the realized production
}

// A record with every derived stage filled in
type Result struct {
	Record        Record
	BreedStd      BreedStandard
	Decomposition Decomposition
	Costs         Costs
}
