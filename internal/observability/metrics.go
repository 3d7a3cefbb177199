// Package observability exposes prometheus counters for scraper runs.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// PagesFetched counts successfully fetched product pages.
	PagesFetched = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pages_fetched_total",
			Help: "Total product pages fetched successfully",
		},
	)

	// FetchFailures counts fetches that ended in a transport or HTTP error.
	FetchFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fetch_failures_total",
			Help: "Total fetches that failed",
		},
	)

	// ExtractFailures counts pages whose extraction failed as a whole.
	ExtractFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "extract_failures_total",
			Help: "Total extractions that failed",
		},
	)
)

// Start registers the counters and serves /metrics on the given port.
func Start(port string) {
	prometheus.MustRegister(PagesFetched, FetchFailures, ExtractFailures)
	http.Handle("/metrics", promhttp.Handler())

	go http.ListenAndServe(":"+port, nil)
}
