package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Enrichment outcomes.
const (
	OutcomeSkipped = "skipped"
	OutcomeMiss    = "miss"
	OutcomeHit     = "hit"
)

// Metrics tracks registry enrichment, client writes and HTTP traffic.
type Metrics struct {
	Enrichments    *prometheus.CounterVec
	LookupDuration prometheus.Histogram
	ClientWrites   *prometheus.CounterVec
	HTTPRequests   *prometheus.CounterVec
}

// New registers all metrics on reg. Pass prometheus.DefaultRegisterer in
// production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Enrichments: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "clientsapi_enrichments_total",
			Help: "Registry enrichment attempts by outcome (skipped, miss, hit)",
		}, []string{"outcome"}),
		LookupDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "clientsapi_registry_lookup_duration_seconds",
			Help:    "Duration of registry lookups, failed ones included",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		ClientWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "clientsapi_client_writes_total",
			Help: "Persisted client writes by operation (create, update, patch, delete)",
		}, []string{"operation"}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "clientsapi_http_requests_total",
			Help: "Handled HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
	}
}

// IncrementEnrichment records one enrichment outcome. Nil receivers are ignored.
func (m *Metrics) IncrementEnrichment(outcome string) {
	if m == nil {
		return
	}
	m.Enrichments.WithLabelValues(outcome).Inc()
}

// ObserveLookup records a lookup duration.
// Call with time.Now() at the start of the lookup.
func (m *Metrics) ObserveLookup(start time.Time) {
	if m == nil {
		return
	}
	m.LookupDuration.Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncrementClientWrite(operation string) {
	if m == nil {
		return
	}
	m.ClientWrites.WithLabelValues(operation).Inc()
}

func (m *Metrics) IncrementHTTPRequest(method, route string, status int) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}
