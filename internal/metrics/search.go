package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Search pipeline Prometheus metrics.
var (
	OMDbRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "moviesearch",
			Name:      "omdb_requests_total",
			Help:      "Total number of OMDb search requests",
		},
		[]string{"status"}, // success / bad_status / error / decode_error
	)

	OMDbRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "moviesearch",
			Name:      "omdb_request_duration_seconds",
			Help:      "OMDb search request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	PosterProbesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "moviesearch",
			Name:      "poster_probes_total",
			Help:      "Total number of poster reachability probes",
		},
		[]string{"result"}, // ok / bad_status / error
	)

	PosterProbeDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "moviesearch",
			Name:      "poster_probe_duration_seconds",
			Help:      "Poster probe duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	SearchResultsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "moviesearch",
			Name:      "search_results_total",
			Help:      "Search hits by pipeline stage",
		},
		[]string{"stage"}, // candidate / validated
	)
)

var registerSearchOnce sync.Once

// RegisterSearchMetrics registers the search pipeline collectors. Safe to call more than once.
func RegisterSearchMetrics() {
	registerSearchOnce.Do(func() {
		prometheus.MustRegister(OMDbRequestsTotal)
		prometheus.MustRegister(OMDbRequestDuration)
		prometheus.MustRegister(PosterProbesTotal)
		prometheus.MustRegister(PosterProbeDuration)
		prometheus.MustRegister(SearchResultsTotal)
	})
}
