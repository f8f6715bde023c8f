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
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gbads/bodEngine/bod"
)

var ErrRecords = errors.New("invalid records file")

// Input column names
const (
	ColCountry         = "country"
	ColSpecies         = "species"
	ColYear            = "year"
	ColHeadPlaced      = "acc_headplaced"
	ColHeadSlaughtered = "acc_headslaughtered"
	ColProduction      = "acc_totalproduction_tonnes"
	ColDeathLoss       = "acc_deathloss_tonnes"
	ColDaysOnFeed      = "acc_avgdaysonfeed"
	ColFeedIntake      = "acc_avgfeedintake_kg"
	ColFeedPrice       = "acc_feedprice_usdpertonne"
	ColFeedCost        = "acc_feedcost_usdperkg"
	ColChickCost       = "acc_chickcost_usdperkg"
	ColLandHousingCost = "acc_landhousingcost_usdperkg"
	ColLaborCost       = "acc_laborcost_usdperkg"
	ColMedCost         = "acc_medcost_usdperkg"
	ColOtherCost       = "acc_othercost_usdperkg"
)

var mandatory = []string{ColCountry, ColSpecies, ColYear, ColHeadPlaced, ColHeadSlaughtered, ColProduction}

// InputColumns in the order WriteResults writes them
var InputColumns = []string{
	ColCountry, ColSpecies, ColYear, ColHeadPlaced, ColHeadSlaughtered, ColProduction, ColDeathLoss,
	ColDaysOnFeed, ColFeedIntake, ColFeedPrice, ColFeedCost, ColChickCost, ColLandHousingCost,
	ColLaborCost, ColMedCost, ColOtherCost,
}

func Load(fileName string) ([]bod.Record, error) {

	f, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to open records file %s: %w", fileName, err)
	}
	defer f.Close()

	recs, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return recs, nil
}

// Read records from CSV.  The 1st line is the header; column order is free
// and unknown columns are skipped.  Blank optional cells read as not observed.
func Read(r io.Reader) ([]bod.Record, error) {

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: no header line", ErrRecords)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRecords, err)
	}

	col := make(map[string]int)
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, m := range mandatory {
		if _, ok := col[m]; !ok {
			return nil, fmt.Errorf("%w: column %s not found", ErrRecords, m)
		}
	}

	var recs []bod.Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRecords, err)
		}
		line, _ := cr.FieldPos(0)

		rec, err := parseRow(row, col)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrRecords, line, err)
		}
		recs = append(recs, rec)
	}

	return recs, nil
}

func parseRow(row []string, col map[string]int) (bod.Record, error) {

	var rec bod.Record
	var err error

	cell := func(name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	// Optional numbers are 0 when blank
	num := func(name string, dst *float64) {
		if err != nil {
			return
		}
		s := cell(name)
		if s == "" || strings.EqualFold(s, "na") {
			return
		}
		if *dst, err = strconv.ParseFloat(s, 64); err != nil {
			err = fmt.Errorf("%s: %v", name, err)
		}
	}

	rec.Country = cell(ColCountry)
	if rec.Species, err = bod.ParseSpecies(cell(ColSpecies)); err != nil {
		return rec, err
	}
	if rec.Year, err = strconv.Atoi(cell(ColYear)); err != nil {
		return rec, fmt.Errorf("%s: %v", ColYear, err)
	}

	for _, m := range []string{ColHeadPlaced, ColHeadSlaughtered, ColProduction} {
		if cell(m) == "" {
			return rec, fmt.Errorf("%s is blank", m)
		}
	}

	num(ColHeadPlaced, &rec.HeadPlaced)
	num(ColHeadSlaughtered, &rec.HeadSlaughtered)
	num(ColProduction, &rec.ProductionTonnes)
	num(ColDaysOnFeed, &rec.AvgDaysOnFeed)
	num(ColFeedIntake, &rec.AvgFeedIntakeKg)
	num(ColFeedPrice, &rec.FeedPriceUsdPerTonne)
	num(ColFeedCost, &rec.Costs.Feed)
	num(ColChickCost, &rec.Costs.Chick)
	num(ColLandHousingCost, &rec.Costs.LandHousing)
	num(ColLaborCost, &rec.Costs.Labor)
	num(ColMedCost, &rec.Costs.Med)
	num(ColOtherCost, &rec.Costs.Other)

	var death float64
	if s := cell(ColDeathLoss); s != "" && !strings.EqualFold(s, "na") {
		num(ColDeathLoss, &death)
		rec.DeathLossTonnes = &death
	}

	return rec, err
}
