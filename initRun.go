// initRun
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
	"os"

	"github.com/gbads/bodEngine/bod"
	"github.com/gbads/bodEngine/breedStd"
	"github.com/gbads/bodEngine/logger"
	"github.com/gbads/bodEngine/metrics"
	"github.com/gbads/bodEngine/params"
	"github.com/gbads/bodEngine/records"
)

var (
	scenarioFile   *string // Name of the scenario hjson file
	breedStdFile   *string // Breed standard hjson file
	breedStdSwine  *string // Second breed standard when both species are evaluated
	recordsFile    *string // CSV of accumulated actuals
	outFile        *string // CSV of results
	metricsFile    *string // Prometheus textfile
	workers        *int    // Rows evaluated at once
	skipDegenerate *bool   // Drop rows that cannot be evaluated
)

var scenarios params.Params_t
var curves map[bod.Species]*breedStd.Curve
var recs []bod.Record
var collector *metrics.Metrics

// Initialize the run
func initRun() {

	parseArgs()

	var err error
	if scenarios, err = params.LoadScenario(*scenarioFile); err != nil {
		logger.LogWriterFatal(err.Error())
	}
	if logger.Verbose() && scenarios.Comment != "" {
		fmt.Printf("Comment: %v\n\n", scenarios.Comment)
	}

	curves = make(map[bod.Species]*breedStd.Curve)
	for _, f := range []string{*breedStdFile, *breedStdSwine} {
		if f == "" {
			continue
		}
		loadCurve(f)
	}

	if recs, err = records.Load(*recordsFile); err != nil {
		logger.LogWriterFatal(err.Error())
	}
	if logger.Verbose() {
		fmt.Printf("Records: %d from %s\n", len(recs), *recordsFile)
		for s, scen := range scenarios.Scenarios {
			fmt.Printf("Scenario %-8s growth %+v, efficiency %+v, ideal FCR %v\n", s, scen.Growth, scen.Efficiency, scen.IdealFCR)
		}
		fmt.Println()
	}

	if *metricsFile != "" {
		collector = metrics.New()
	}
}

func loadCurve(fileName string) {

	c, err := breedStd.Load(fileName)
	if err != nil {
		logger.LogWriterFatal(err.Error())
	}
	s, err := bod.ParseSpecies(c.Species)
	if err != nil {
		logger.LogWriterFatal(fileName + ": " + err.Error())
	}
	if _, ok := curves[s]; ok {
		logger.LogWriterFatal("more than one " + string(s) + " breed standard given")
	}
	curves[s] = c

	if logger.Verbose() {
		first, last := c.DayRange()
		fmt.Printf("Breed standard: %s (%s) days %v to %v\n", c.Breed, s, first, last)
	}
}

// Parse the arg list
func parseArgs() {

	scenarioFile = flag.String("scenario", "", "The scenario hjson file (required)")
	breedStdFile = flag.String("breedStd", "", "Breed standard hjson file (required)")
	breedStdSwine = flag.String("breedStdSwine", "", "A second breed standard, for record sets with both species")
	recordsFile = flag.String("records", "", "CSV of accumulated country/species/year records (required)")
	outFile = flag.String("out", "", "CSV file of results; quiet mode writes to stdout without it")
	logger.OutputMode = flag.String("outputMode", "verbose", "'verbose'(default), 'table' or 'quiet'")
	workers = flag.Int("workers", 1, "Records evaluated at once")
	skipDegenerate = flag.Bool("skipDegenerate", false, "Log and drop degenerate or out of range records instead of stopping")
	metricsFile = flag.String("metricsFile", "", "Optional prometheus textfile of run counters")
	isVersion := flag.Bool("version", false, "prints the version number of bodCalc")

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
