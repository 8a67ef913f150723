package service

import (
	"context"
	"testing"

	"clientsapi/cmd/internal/contract"
	"clientsapi/cmd/internal/domain/entity"
	"clientsapi/cmd/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// FAKES
// ============================================================================

type fakeLookup struct {
	record *entity.CompanyRecord
	ok     bool
	calls  []string
}

func (f *fakeLookup) Lookup(_ context.Context, inn string) (*entity.CompanyRecord, bool) {
	f.calls = append(f.calls, inn)
	if !f.ok {
		return nil, false
	}
	return f.record, true
}

func testCompanyRecord() *entity.CompanyRecord {
	return &entity.CompanyRecord{
		FullName:          "ОБЩЕСТВО С ОГРАНИЧЕННОЙ ОТВЕТСТВЕННОСТЬЮ \"ТЕСТОВАЯ КОМПАНИЯ\"",
		ShortName:         "ООО ТЕСТОВАЯ КОМПАНИЯ",
		INN:               "123456789012",
		KPP:               "123456789",
		OGRN:              "1234567890123",
		Address:           "г Москва, ул Тестовая, д 1",
		OKVED:             "62.01",
		RegDate:           "2000-01-01",
		AuthorizedCapital: "10000.00",
		Status:            entity.ClientStatusLiquidated,
	}
}

func strPtr(s string) *string { return &s }

func newTestEnricher(lookup CompanyLookup) (*Enricher, *metrics.Metrics) {
	m := metrics.New(prometheus.NewRegistry())
	e := NewEnricher(lookup, m)
	e.Now = func() int64 { return 1_700_000_000_000 }
	return e, m
}

var (
	dadataSource = &entity.DataSource{ID: 1, Name: "DaData"}
	manualSource = &entity.DataSource{ID: 2, Name: "manual"}
)

// ============================================================================
// TESTS
// ============================================================================

func TestEnrichFillsEmptyFields(t *testing.T) {
	lookup := &fakeLookup{record: testCompanyRecord(), ok: true}
	e, m := newTestEnricher(lookup)

	req := &contract.ClientRequest{INN: strPtr("123456789012")}
	checkedAt := e.Enrich(context.Background(), req, dadataSource)

	require.NotNil(t, checkedAt)
	assert.EqualValues(t, 1_700_000_000_000, *checkedAt)
	assert.Equal(t, []string{"123456789012"}, lookup.calls)

	assert.Equal(t, "ОБЩЕСТВО С ОГРАНИЧЕННОЙ ОТВЕТСТВЕННОСТЬЮ \"ТЕСТОВАЯ КОМПАНИЯ\"", *req.FullName)
	assert.Equal(t, "ООО ТЕСТОВАЯ КОМПАНИЯ", *req.ShortName)
	assert.Equal(t, "123456789", *req.KPP)
	assert.Equal(t, "1234567890123", *req.OGRN)
	assert.Equal(t, "г Москва, ул Тестовая, д 1", *req.Address)
	assert.Equal(t, "62.01", *req.OKVED)
	assert.Equal(t, "2000-01-01", *req.RegDate)
	assert.Equal(t, "10000.00", req.AuthorizedCapital.String())
	assert.Equal(t, "liquidated", *req.Status)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Enrichments.WithLabelValues(metrics.OutcomeHit)))
}

func TestEnrichKeepsCallerValues(t *testing.T) {
	lookup := &fakeLookup{record: testCompanyRecord(), ok: true}
	e, _ := newTestEnricher(lookup)

	req := &contract.ClientRequest{
		INN:       strPtr("123456789012"),
		FullName:  strPtr("ООО Мой Вариант"),
		OGRN:      strPtr("9999999999999"),
		Status:    strPtr("active"),
		ShortName: strPtr(""),
	}
	e.Enrich(context.Background(), req, dadataSource)

	assert.Equal(t, "ООО Мой Вариант", *req.FullName)
	assert.Equal(t, "9999999999999", *req.OGRN)
	assert.Equal(t, "active", *req.Status)
	assert.Equal(t, "ООО ТЕСТОВАЯ КОМПАНИЯ", *req.ShortName, "empty strings count as not supplied")
	assert.Equal(t, "123456789", *req.KPP)
}

func TestEnrichSkips(t *testing.T) {
	tests := []struct {
		name   string
		req    *contract.ClientRequest
		source *entity.DataSource
	}{
		{"no inn", &contract.ClientRequest{OGRN: strPtr("1234567890123")}, dadataSource},
		{"empty inn", &contract.ClientRequest{INN: strPtr("")}, dadataSource},
		{"other source", &contract.ClientRequest{INN: strPtr("123456789012")}, manualSource},
		{"no source", &contract.ClientRequest{INN: strPtr("123456789012")}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := &fakeLookup{record: testCompanyRecord(), ok: true}
			e, m := newTestEnricher(lookup)

			assert.Nil(t, e.Enrich(context.Background(), tt.req, tt.source))
			assert.Empty(t, lookup.calls)
			assert.Nil(t, tt.req.FullName)
			assert.Equal(t, 1.0, testutil.ToFloat64(m.Enrichments.WithLabelValues(metrics.OutcomeSkipped)))
		})
	}
}

func TestEnrichSourceNameIgnoresCase(t *testing.T) {
	lookup := &fakeLookup{record: testCompanyRecord(), ok: true}
	e, _ := newTestEnricher(lookup)

	req := &contract.ClientRequest{INN: strPtr("123456789012")}
	assert.NotNil(t, e.Enrich(context.Background(), req, &entity.DataSource{ID: 3, Name: "DADATA"}))
}

func TestEnrichMissLeavesPayloadUntouched(t *testing.T) {
	lookup := &fakeLookup{ok: false}
	e, m := newTestEnricher(lookup)

	req := &contract.ClientRequest{INN: strPtr("123456789012"), ShortName: strPtr("Своё")}
	assert.Nil(t, e.Enrich(context.Background(), req, dadataSource))

	assert.Equal(t, &contract.ClientRequest{INN: strPtr("123456789012"), ShortName: strPtr("Своё")}, req)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Enrichments.WithLabelValues(metrics.OutcomeMiss)))
}

func TestMergeCompanyRecordIgnoresEmptyRegistryValues(t *testing.T) {
	req := &contract.ClientRequest{INN: strPtr("7707083893")}
	MergeCompanyRecord(req, &entity.CompanyRecord{ShortName: "Только имя", Status: entity.ClientStatusActive})

	assert.Equal(t, "Только имя", *req.ShortName)
	assert.Equal(t, "active", *req.Status)
	assert.Nil(t, req.FullName)
	assert.Nil(t, req.KPP)
	assert.Nil(t, req.OGRN)
	assert.Nil(t, req.RegDate)
	assert.Nil(t, req.AuthorizedCapital)
}
