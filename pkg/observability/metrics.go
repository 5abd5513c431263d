package observability

import (
	"github.com/aretw0/switchback/pkg/search"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "switchback"

// Outcome labels for the searches counter.
const (
	OutcomeSolved    = "solved"
	OutcomeExhausted = "exhausted"
	OutcomeTruncated = "truncated"
)

// Metrics groups the collectors updated by SearchHooks.
type Metrics struct {
	Expanded       prometheus.Counter
	Generated      prometheus.Counter
	Duplicates     prometheus.Counter
	Searches       *prometheus.CounterVec
	SolutionLength prometheus.Histogram
	PeakFrontier   prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Expanded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "states_expanded_total",
			Help:      "Total number of states dequeued and expanded",
		}),
		Generated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "states_generated_total",
			Help:      "Total number of new states added to the visited set",
		}),
		Duplicates: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "states_duplicate_total",
			Help:      "Total number of successors discarded as already visited",
		}),
		Searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Completed searches by outcome",
		}, []string{"outcome"}),
		SolutionLength: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solution_length_moves",
			Help:      "Number of moves in found solutions",
			Buckets:   prometheus.LinearBuckets(0, 5, 10),
		}),
		PeakFrontier: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "frontier_peak_states",
			Help:      "Largest frontier observed in the last search",
		}),
	}
}

// SearchHooks returns hooks that record engine events into m.
func SearchHooks[S any](m *Metrics) search.Hooks[S] {
	peak := 0
	track := func(e *search.Event[S]) {
		if e.Frontier > peak {
			peak = e.Frontier
			m.PeakFrontier.Set(float64(peak))
		}
	}

	return search.Hooks[S]{
		OnExpand: func(e *search.Event[S]) {
			m.Expanded.Inc()
		},
		OnGenerate: func(e *search.Event[S]) {
			m.Generated.Inc()
			track(e)
		},
		OnDuplicate: func(e *search.Event[S]) {
			m.Duplicates.Inc()
		},
		OnGoal: func(e *search.Event[S]) {
			m.Searches.WithLabelValues(OutcomeSolved).Inc()
			m.SolutionLength.Observe(float64(e.Depth))
			peak = 0
		},
		OnExhausted: func(e *search.Event[S]) {
			m.Searches.WithLabelValues(OutcomeExhausted).Inc()
			peak = 0
		},
		OnTruncated: func(e *search.Event[S]) {
			m.Searches.WithLabelValues(OutcomeTruncated).Inc()
			peak = 0
		},
	}
}
