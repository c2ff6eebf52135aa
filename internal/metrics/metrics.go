package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photobase_http_requests_total",
	Help: "Total number of HTTP requests by route and status",
}, []string{"route", "status"})

var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "photobase_http_request_duration_seconds",
	Help:    "Histogram for the request duration in seconds",
	Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5},
}, []string{"route"})

var PhotoEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photobase_photo_events_total",
	Help: "Total number of recorded like/impression events",
}, []string{"kind"})

var GeocodingTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photobase_geocoding_total",
	Help: "Geocoding lookups by outcome",
}, []string{"outcome"})

var SearchResultsTotal = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "photobase_search_candidates",
	Help:    "Number of candidate photos per proximity search",
	Buckets: prometheus.ExponentialBuckets(1, 4, 8),
})

// Handler отдает метрики в формате prometheus.
func Handler() http.Handler {
	return promhttp.Handler()
}
