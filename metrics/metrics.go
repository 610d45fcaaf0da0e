// Package metrics records solver runs: how often each strategy ran, how long
// it took and how good the result was.
//
// Recorder is the integration point. Noop discards everything; Prometheus
// exports counters, histograms and gauges through a caller-supplied
// registry. Instrument wraps any core.Solver so every Solve call is recorded
// without the solver knowing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/knapsack/core"
)

// Recorder receives one observation per Solve call.
type Recorder interface {
	// RecordSolve is called after Solve returns. sol is the zero Solution when err != nil.
	RecordSolve(algo string, elapsed time.Duration, sol core.Solution, err error)
}

// Noop is a Recorder that discards observations.
type Noop struct{}

// RecordSolve implements Recorder.
func (Noop) RecordSolve(string, time.Duration, core.Solution, error) {}

// Prometheus is a Recorder backed by client_golang collectors.
type Prometheus struct {
	solves   *prometheus.CounterVec
	duration *prometheus.HistogramVec
	best     *prometheus.GaugeVec
	chosen   *prometheus.GaugeVec
}

// NewPrometheus creates the collectors and registers them with reg.
func NewPrometheus(reg prometheus.Registerer) (*Prometheus, error) {
	p := &Prometheus{
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "knapsack",
			Name:      "solve_total",
			Help:      "Number of Solve calls by algorithm and result.",
		}, []string{"algorithm", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "knapsack",
			Name:      "solve_duration_seconds",
			Help:      "Wall-clock duration of Solve calls.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"algorithm"}),
		best: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "knapsack",
			Name:      "best_value",
			Help:      "Value of the last successful solution.",
		}, []string{"algorithm"}),
		chosen: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "knapsack",
			Name:      "chosen_items",
			Help:      "Number of items in the last successful solution.",
		}, []string{"algorithm"}),
	}
	for _, c := range []prometheus.Collector{p.solves, p.duration, p.best, p.chosen} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// RecordSolve implements Recorder.
func (p *Prometheus) RecordSolve(algo string, elapsed time.Duration, sol core.Solution, err error) {
	p.duration.WithLabelValues(algo).Observe(elapsed.Seconds())
	if err != nil {
		p.solves.WithLabelValues(algo, "error").Inc()
		return
	}
	p.solves.WithLabelValues(algo, "ok").Inc()
	p.best.WithLabelValues(algo).Set(float64(sol.Value))
	p.chosen.WithLabelValues(algo).Set(float64(sol.Len()))
}

// WriteTextfile writes everything g gathers to path in the text exposition
// format (for the node_exporter textfile collector).
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
