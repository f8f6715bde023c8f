// metrics
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
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/gbads/bodEngine/bod"
)

// Metrics counts what a bod.Engine pass did.  It satisfies bod.Observer and
// keeps its own registry so a run can dump it to a node exporter textfile.
type Metrics struct {
	Registry *prometheus.Registry

	RowsEvaluated  *prometheus.CounterVec
	RowsRejected   *prometheus.CounterVec
	RowsCorrected  *prometheus.CounterVec
	WaterfallTonne *prometheus.GaugeVec
	BurdenCostUsd  *prometheus.GaugeVec
}

func New() *Metrics {

	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		RowsEvaluated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bod_rows_evaluated_total",
			Help: "Records evaluated through every stage",
		}, []string{"species"}),
		RowsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bod_rows_rejected_total",
			Help: "Records rejected, by error kind",
		}, []string{"species", "reason"}),
		RowsCorrected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bod_rows_corrected_total",
			Help: "Records whose positive morbidity was folded into efficiency",
		}, []string{"species"}),
		WaterfallTonne: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "bod_waterfall_tonnes",
			Help: "Summed waterfall component over evaluated records",
		}, []string{"species", "component"}),
		BurdenCostUsd: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "bod_burden_cost_usd",
			Help: "Summed burden cost over evaluated records",
		}, []string{"species"}),
	}
}

func (m *Metrics) Evaluated(r bod.Result) {

	s := string(r.Record.Species)
	d := r.Decomposition

	m.RowsEvaluated.WithLabelValues(s).Inc()
	if d.Corrected {
		m.RowsCorrected.WithLabelValues(s).Inc()
	}

	m.WaterfallTonne.WithLabelValues(s, "reference").Add(d.ReferenceTonnes)
	m.WaterfallTonne.WithLabelValues(s, "efficiency").Add(d.EfficiencyTonnes)
	m.WaterfallTonne.WithLabelValues(s, "deathloss").Add(d.DeathLossTonnes)
	m.WaterfallTonne.WithLabelValues(s, "morbidity").Add(d.MorbidityTonnes)
	m.WaterfallTonne.WithLabelValues(s, "realized").Add(d.RealizedTonnes)
	m.BurdenCostUsd.WithLabelValues(s).Add(r.Costs.BurdenCostUsd)
}

func (m *Metrics) Rejected(rec bod.Record, err error) {
	m.RowsRejected.WithLabelValues(string(rec.Species), Reason(err)).Inc()
}

// Label value for the kind of error a row failed with
func Reason(err error) string {
	switch {
	case errors.Is(err, bod.ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, bod.ErrDegenerateInput):
		return "degenerate"
	case errors.Is(err, bod.ErrConfiguration):
		return "configuration"
	}
	return "other"
}

// Write every metric in the text exposition format
func (m *Metrics) WriteTextfile(fileName string) error {
	return prometheus.WriteToTextfile(fileName, m.Registry)
}
