// starter project main.go
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
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"runtime"
	"time"

	hjson "github.com/hjson/hjson-go"

	"github.com/gbads/bodEngine/bod"
	"github.com/gbads/bodEngine/breedStd"
	"github.com/gbads/bodEngine/logger"
	"github.com/gbads/bodEngine/params"
	"github.com/gbads/bodEngine/records"
	"github.com/gbads/bodEngine/sensitivity"
)

var version string = "beta0.3.1"

var scenarioFile *string
var breedStdFile *string
var recordsFile *string
var outputFile *string
var nWorkers *int
var from, to *float64
var steps *int

// Parse the arg list looking for the input files
func parseArgs() {

	scenarioFile = flag.String("scenario", "", "The scenario hjson file (required)")
	breedStdFile = flag.String("breedStd", "", "Breed standard hjson file; its species picks the records swept (required)")
	recordsFile = flag.String("records", "", "CSV of accumulated records (required)")
	logger.OutputMode = flag.String("outputMode", "verbose", "'verbose'(default) or 'table'")
	nWorkers = flag.Int("workers", runtime.NumCPU(), "Grid points run at once")
	from = flag.Float64("from", math.NaN(), "Lowest achievable percent; overrides sweep: in the scenario")
	to = flag.Float64("to", math.NaN(), "Highest achievable percent")
	steps = flag.Int("steps", 0, "Number of grid points")
	isVersion := flag.Bool("version", false, "prints the version number of starter")
	outputFile = flag.String("outputFile", "", "Optional hjson file of the sweep")

	flag.Parse()

	if *isVersion {
		fmt.Println("Version:", version)
		os.Exit(0)
	}

	if *scenarioFile == "" || *breedStdFile == "" || *recordsFile == "" {
		if logger.Verbose() {
			flag.Usage()
		}
		logger.LogWriterFatal("-scenario, -breedStd and -records are required")
	}
}

// Grid from the flags, else from the scenario file, else 60..120
func grid(p params.Params_t) []float64 {

	g := params.Sweep_t{From: 60, To: 120, Steps: 25}
	if p.Sweep != nil {
		g = *p.Sweep
	}
	if !math.IsNaN(*from) {
		g.From = *from
	}
	if !math.IsNaN(*to) {
		g.To = *to
	}
	if *steps > 0 {
		g.Steps = *steps
	}
	pcts, err := sensitivity.Grid(g.From, g.To, g.Steps)
	if err != nil {
		logger.LogWriterFatal(err.Error())
	}
	return pcts
}

type pointOut_t struct {
	Pct                  float64 `json:"achievablePct"`
	Rows                 int     `json:"rows"`
	Rejected             int     `json:"rejected"`
	Corrected            int     `json:"corrected"`
	EfficiencyTonnes     float64 `json:"efficiencyTonnes"`
	GmaxTonnes           float64 `json:"gmaxTonnes"`
	MorbidityTonnes      float64 `json:"morbidityTonnes"`
	MeanMorbidityShare   float64 `json:"meanMorbidityShare"`
	StdDevMorbidityShare float64 `json:"sdMorbidityShare"`
	BurdenCostUsd        float64 `json:"burdenCostUsd"`
}

func writeSweep(fileName string, species bod.Species, points []sensitivity.Point_t) error {

	out := struct {
		Species string       `json:"species"`
		Points  []pointOut_t `json:"points"`
	}{Species: string(species)}

	for _, p := range points {
		out.Points = append(out.Points, pointOut_t{
			p.Pct, p.Rows, p.Rejected, p.Corrected,
			p.EfficiencyTonnes, p.GmaxTonnes, p.MorbidityTonnes,
			p.MeanMorbidityShare, p.StdDevMorbidityShare, p.BurdenCostUsd,
		})
	}

	b, err := hjson.Marshal(out)
	if err != nil {
		return err
	}
	return os.WriteFile(fileName, append(b, '\n'), 0644)
}

func main() {

	verbose := "verbose"
	logger.OutputMode = &verbose

	parseArgs()

	p, err := params.LoadScenario(*scenarioFile)
	if err != nil {
		logger.LogWriterFatal(err.Error())
	}
	curve, err := breedStd.Load(*breedStdFile)
	if err != nil {
		logger.LogWriterFatal(err.Error())
	}
	species, err := bod.ParseSpecies(curve.Species)
	if err != nil {
		logger.LogWriterFatal(err.Error())
	}
	scen, ok := p.Scenarios[species]
	if !ok {
		logger.LogWriterFatal("no " + string(species) + " scenario in " + *scenarioFile)
	}
	recs, err := records.Load(*recordsFile)
	if err != nil {
		logger.LogWriterFatal(err.Error())
	}

	pcts := grid(p)

	start := time.Now()
	points, err := sensitivity.Run(species, recs, curve, scen, pcts, *nWorkers)
	if err != nil {
		logger.LogWriterFatal(err.Error())
	}
	elapsed := time.Since(start)

	if logger.Verbose() || logger.Mode() == "table" {
		sensitivity.Print(os.Stdout, points)
	}
	if logger.Verbose() {
		fmt.Println("Grid points:", len(pcts), "Total time:", elapsed, "Using", *nWorkers, "workers")
	}

	if *outputFile != "" {
		if err := writeSweep(*outputFile, species, points); err != nil {
			logger.LogWriterFatal("Cannot write outputFile: " + err.Error())
		}
	}
}
