// bodCalc project main.go
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
	"errors"
	"fmt"
	"os"

	"github.com/gbads/bodEngine/bod"
	"github.com/gbads/bodEngine/logger"
	"github.com/gbads/bodEngine/records"
	"github.com/gbads/bodEngine/summary"
)

var version = "beta0.3.1"

func printTables(results []bod.Result) {
	if logger.Mode() != "verbose" && logger.Mode() != "table" {
		return
	}

	records.PrintTable(os.Stdout, results)

	fmt.Println()
	fmt.Println("By species:")
	summary.Print(os.Stdout, summary.BySpecies(results))

	if logger.Verbose() {
		fmt.Println()
		fmt.Println("By country and year:")
		summary.Print(os.Stdout, summary.ByCountryYear(results))

		fmt.Println()
		fmt.Println("Waterfall matrix (" + fmt.Sprint(summary.ColNames) + "):")
		summary.MatPrint(os.Stdout, summary.Matrix(results))
	}
}

// Row errors out of a joined error from the engine
func rowErrors(err error) []*bod.RowError {
	var out []*bod.RowError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			var re *bod.RowError
			if errors.As(e, &re) {
				out = append(out, re)
			}
		}
	}
	return out
}

// Evaluate every record.  With -skipDegenerate rows that are degenerate or
// outside the breed standard are logged and dropped; anything else is fatal.
func evaluate() []bod.Result {

	engine := bod.Engine{Workers: *workers}
	if collector != nil {
		engine.Observer = collector
	}

	results, err := engine.Evaluate(recs, curves, scenarios.Scenarios)
	if err == nil {
		return results
	}

	bad := rowErrors(err)
	if len(bad) == 0 {
		logger.LogWriterFatal(err.Error())
	}

	skip := make(map[int]bool)
	for _, re := range bad {
		logger.LogWriter(re.Error())
		recoverable := errors.Is(re, bod.ErrDegenerateInput) || errors.Is(re, bod.ErrOutOfRange)
		if !*skipDegenerate || !recoverable {
			logger.LogWriterFatal(fmt.Sprintf("%d rows failed, first: %v", len(bad), re))
		}
		skip[re.Row] = true
	}

	var kept []bod.Record
	for i, rec := range recs {
		if !skip[i] {
			kept = append(kept, rec)
		}
	}
	if logger.Verbose() {
		fmt.Printf("Skipped %d of %d records\n\n", len(skip), len(recs))
	}

	results, err = bod.Engine{Workers: *workers}.Evaluate(kept, curves, scenarios.Scenarios)
	if err != nil {
		logger.LogWriterFatal(err.Error())
	}
	return results
}

func main() {

	initRun() // Flags, scenario, breed standards and records

	results := evaluate()

	printTables(results)

	if *outFile != "" {
		if err := records.SaveResults(*outFile, results); err != nil {
			logger.LogWriterFatal(err.Error())
		}
	} else if logger.Mode() == "quiet" {
		if err := records.WriteResults(os.Stdout, results); err != nil {
			logger.LogWriterFatal(err.Error())
		}
	}

	if collector != nil {
		if err := collector.WriteTextfile(*metricsFile); err != nil {
			logger.LogWriterFatal(err.Error())
		}
	}

	logger.LogWriter(fmt.Sprintf("evaluated %d of %d records", len(results), len(recs)))
}
