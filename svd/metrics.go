package svd

import "github.com/prometheus/client_golang/prometheus"

// Label values besides Status.String().
const (
	labelInterrupted = "interrupted"
	labelRejected    = "rejected"
	labelFailed      = "failed"
)

// Metrics holds the Prometheus collectors updated at the end of every run.
//
//   - <ns>_svd_runs_total{status}: one increment per Dominant call, labelled
//     with the terminal status, "interrupted", "rejected" (contract violation)
//     or "failed" (operator error).
//   - <ns>_svd_rounds: histogram of rounds executed by runs that iterated.
//
// A *Metrics is safe for concurrent use.
type Metrics struct {
	runs   *prometheus.CounterVec
	rounds prometheus.Histogram
}

// NewMetrics builds the collectors and registers them with reg (nil skips
// registration, which is handy in tests).
//
// Errors: the prometheus.AlreadyRegisteredError (or other) from reg.Register.
func NewMetrics(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "svd",
			Name:      "runs_total",
			Help:      "Dominant singular triplet computations by terminal status.",
		}, []string{"status"}),
		rounds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "svd",
			Name:      "rounds",
			Help:      "Power-iteration rounds executed per computation.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1 .. 2048
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.runs, m.rounds} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// observe records one finished run under label. A nil receiver is a no-op.
func (m *Metrics) observe(label string, rounds int) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(label).Inc()
	if rounds > 0 {
		m.rounds.Observe(float64(rounds))
	}
}
