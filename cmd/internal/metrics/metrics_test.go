package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementEnrichment(OutcomeHit)
	m.IncrementEnrichment(OutcomeHit)
	m.IncrementEnrichment(OutcomeMiss)
	m.IncrementClientWrite("create")
	m.ObserveLookup(time.Now())
	m.IncrementHTTPRequest("GET", "/api/clients", 200)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Enrichments.WithLabelValues(OutcomeHit)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Enrichments.WithLabelValues(OutcomeMiss)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Enrichments.WithLabelValues(OutcomeSkipped)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ClientWrites.WithLabelValues("create")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/clients", "200")))
}

func TestMetricsRegisterOnGivenRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.IncrementEnrichment(OutcomeSkipped)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["clientsapi_enrichments_total"])
}

func TestNilMetricsAreNoops(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementEnrichment(OutcomeHit)
		m.ObserveLookup(time.Now())
		m.IncrementClientWrite("delete")
		m.IncrementHTTPRequest("GET", "/health", 200)
	})
}
