package service

import (
	"context"
	"encoding/json"
	"time"

	"clientsapi/cmd/internal/contract"
	"clientsapi/cmd/internal/domain/entity"
	"clientsapi/cmd/internal/metrics"
	"clientsapi/cmd/internal/utils"

	"github.com/labstack/gommon/log"
)

// CompanyLookup resolves an INN into registry data. A false result means
// "no data", whatever the reason.
type CompanyLookup interface {
	Lookup(ctx context.Context, inn string) (*entity.CompanyRecord, bool)
}

// Enricher fills the blanks of a client payload with registry data.
type Enricher struct {
	Lookup  CompanyLookup
	Metrics *metrics.Metrics
	Now     func() int64
}

func NewEnricher(lookup CompanyLookup, m *metrics.Metrics) *Enricher {
	return &Enricher{
		Lookup:  lookup,
		Metrics: m,
		Now:     utils.NowUTC,
	}
}

// Enrich queries the registry when the payload carries an INN and source is
// the DaData data source, then copies every registry value the caller left
// empty into req. It returns the check time when registry data was merged and
// nil when the lookup was skipped or produced nothing.
//
// source is the data source the payload references, nil when it referenced none.
func (e *Enricher) Enrich(ctx context.Context, req *contract.ClientRequest, source *entity.DataSource) *int64 {
	inn := utils.StringValue(req.INN)
	if inn == "" || !source.IsDaData() || e.Lookup == nil {
		e.Metrics.IncrementEnrichment(metrics.OutcomeSkipped)
		return nil
	}

	start := time.Now()
	record, ok := e.Lookup.Lookup(ctx, inn)
	e.Metrics.ObserveLookup(start)
	if !ok || record == nil {
		e.Metrics.IncrementEnrichment(metrics.OutcomeMiss)
		return nil
	}

	MergeCompanyRecord(req, record)
	e.Metrics.IncrementEnrichment(metrics.OutcomeHit)
	log.Debugf("enriched client payload for inn %s from registry", inn)

	checkedAt := e.Now()
	return &checkedAt
}

// MergeCompanyRecord copies registry values into the fields of req that are
// nil or empty. Values the caller supplied are never touched, and empty
// registry values never overwrite anything.
func MergeCompanyRecord(req *contract.ClientRequest, record *entity.CompanyRecord) {
	fillString(&req.FullName, record.FullName)
	fillString(&req.ShortName, record.ShortName)
	fillString(&req.KPP, record.KPP)
	fillString(&req.OGRN, record.OGRN)
	fillString(&req.Address, record.Address)
	fillString(&req.OKVED, record.OKVED)
	fillString(&req.RegDate, record.RegDate)
	fillString(&req.Status, string(record.Status))

	if (req.AuthorizedCapital == nil || *req.AuthorizedCapital == "") && record.AuthorizedCapital != "" {
		capital := json.Number(record.AuthorizedCapital)
		req.AuthorizedCapital = &capital
	}
}

func fillString(dst **string, value string) {
	if value == "" {
		return
	}
	if *dst != nil && **dst != "" {
		return
	}
	v := value
	*dst = &v
}
