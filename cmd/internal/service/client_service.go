package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"clientsapi/cmd/internal/contract"
	"clientsapi/cmd/internal/domain/entity"
	"clientsapi/cmd/internal/metrics"
	"clientsapi/cmd/internal/utils"
	"clientsapi/cmd/internal/utils/apierror"
	"clientsapi/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type ClientRepository interface {
	FindPage(offset, limit int) ([]*entity.Client, int64, error)
	FindByID(id int) (*entity.Client, error)
	Save(client *entity.Client) error
	Delete(client *entity.Client) error
}

type DataSourceRepository interface {
	FindAll() ([]*entity.DataSource, error)
	FindByID(id int) (*entity.DataSource, error)
	Save(source *entity.DataSource) error
	CountClients(id int) (int64, error)
	Delete(source *entity.DataSource) error
}

type ClientService struct {
	ClientRepo ClientRepository
	SourceRepo DataSourceRepository
	Enricher   *Enricher
	Validate   *validator.Validate
	Metrics    *metrics.Metrics
}

func NewClientService(
	clientRepo ClientRepository,
	sourceRepo DataSourceRepository,
	enricher *Enricher,
	validate *validator.Validate,
	m *metrics.Metrics,
) *ClientService {
	return &ClientService{
		ClientRepo: clientRepo,
		SourceRepo: sourceRepo,
		Enricher:   enricher,
		Validate:   validate,
		Metrics:    m,
	}
}

// writeMode tells prepareWrite which identifier presence rule applies.
type writeMode int

const (
	modeCreate writeMode = iota
	modeReplace
	modePatch
)

func (m writeMode) String() string {
	switch m {
	case modeCreate:
		return "create"
	case modeReplace:
		return "update"
	default:
		return "patch"
	}
}

// preparedWrite is a request that passed validation, possibly enriched.
type preparedWrite struct {
	source    *entity.DataSource
	checkedAt *int64
}

func (s *ClientService) GetClients(page int) (*contract.ClientPageResponse, apierror.ErrorResponse) {
	if page < 1 {
		return nil, apierror.InvalidPageError
	}

	offset := (page - 1) * contract.ClientPageSize
	clients, total, err := s.ClientRepo.FindPage(offset, contract.ClientPageSize)
	if err != nil {
		log.Errorf("failed to fetch clients: %v", err)
		return nil, apierror.InternalServerError
	}

	// The first page always exists, even when empty.
	if page > 1 && int64(offset) >= total {
		return nil, apierror.InvalidPageError
	}

	resp := &contract.ClientPageResponse{
		Count:   total,
		Results: make([]*contract.ClientResponse, len(clients)),
	}
	for i, client := range clients {
		resp.Results[i] = toClientResponse(client)
	}

	if int64(offset+contract.ClientPageSize) < total {
		next := page + 1
		resp.Next = &next
	}
	if page > 1 {
		prev := page - 1
		resp.Previous = &prev
	}
	return resp, nil
}

func (s *ClientService) GetClient(id int) (*contract.ClientResponse, apierror.ErrorResponse) {
	client, apierr := s.findClient(id)
	if apierr != nil {
		return nil, apierr
	}
	return toClientResponse(client), nil
}

func (s *ClientService) CreateClient(ctx context.Context, req *contract.ClientRequest) (*contract.ClientResponse, apierror.ErrorResponse) {
	prepared, apierr := s.prepareWrite(ctx, req, nil, modeCreate)
	if apierr != nil {
		return nil, apierr
	}

	now := utils.NowUTC()
	client := &entity.Client{CreatedAt: now}
	applyFull(client, req, prepared)
	client.UpdatedAt = now

	return s.save(client, modeCreate)
}

// ReplaceClient is PUT: every field not in the body is cleared, and only the
// body counts for the INN/OGRN presence rule.
func (s *ClientService) ReplaceClient(ctx context.Context, id int, req *contract.ClientRequest) (*contract.ClientResponse, apierror.ErrorResponse) {
	existing, apierr := s.findClient(id)
	if apierr != nil {
		return nil, apierr
	}

	prepared, apierr := s.prepareWrite(ctx, req, existing, modeReplace)
	if apierr != nil {
		return nil, apierr
	}

	client := &entity.Client{
		ID:            existing.ID,
		CreatedAt:     existing.CreatedAt,
		LastCheckedAt: existing.LastCheckedAt,
	}
	applyFull(client, req, prepared)
	client.UpdatedAt = utils.NowUTC()

	return s.save(client, modeReplace)
}

// PatchClient is PATCH: only the fields present in the body change, and the
// INN/OGRN presence rule falls back to the stored values for absent ones.
func (s *ClientService) PatchClient(ctx context.Context, id int, req *contract.ClientRequest) (*contract.ClientResponse, apierror.ErrorResponse) {
	client, apierr := s.findClient(id)
	if apierr != nil {
		return nil, apierr
	}

	prepared, apierr := s.prepareWrite(ctx, req, client, modePatch)
	if apierr != nil {
		return nil, apierr
	}

	applyPartial(client, req, prepared)
	client.UpdatedAt = utils.NowUTC()

	return s.save(client, modePatch)
}

func (s *ClientService) DeleteClient(id int) apierror.ErrorResponse {
	client, apierr := s.findClient(id)
	if apierr != nil {
		return apierr
	}

	if err := s.ClientRepo.Delete(client); err != nil {
		log.Errorf("failed to delete client %d: %v", id, err)
		return apierror.InternalServerError
	}

	s.Metrics.IncrementClientWrite("delete")
	log.Infof("deleted client %d %s", client.ID, client.DisplayName())
	return nil
}

// prepareWrite runs the whole validation pipeline: field rules, data source
// resolution, registry enrichment, identifier formats and the INN/OGRN
// presence rule. Nothing is written when it fails.
func (s *ClientService) prepareWrite(ctx context.Context, req *contract.ClientRequest, existing *entity.Client, mode writeMode) (*preparedWrite, apierror.ErrorResponse) {
	utils.Sanitize(req)

	problems := apierror.NewStructured(http.StatusBadRequest)
	if valerr := s.Validate.Struct(req); valerr != nil {
		verr := apierror.FromValidationError(valerr)
		if verr == nil {
			log.Errorf("unexpected validation failure: %v", valerr)
			return nil, apierror.InternalServerError
		}
		problems = verr
	}

	source, apierr := s.resolveDataSource(req, mode, problems)
	if apierr != nil {
		return nil, apierr
	}

	if problems.HasErrors() {
		return nil, problems
	}

	checkedAt := s.Enricher.Enrich(ctx, req, source)
	if checkedAt != nil {
		// Registry values skipped the struct rules, so they get the same checks.
		addIdentifierProblem(problems, validators.ValidateKPP(utils.StringValue(req.KPP)))
		addIdentifierProblem(problems, validators.ValidateOGRN(utils.StringValue(req.OGRN)))
		if problems.HasErrors() {
			return nil, problems
		}
	}

	inn, ogrn := utils.StringValue(req.INN), utils.StringValue(req.OGRN)
	if mode == modePatch && existing != nil {
		if req.INN == nil {
			inn = utils.StringValue(existing.INN)
		}
		if req.OGRN == nil {
			ogrn = utils.StringValue(existing.OGRN)
		}
	}

	if err := validators.ValidateIdentifierPresence(inn, ogrn); err != nil {
		problems.Add("inn", validators.MissingIdentifierMessage)
		problems.Add("ogrn", validators.MissingIdentifierMessage)
		return nil, problems
	}

	return &preparedWrite{source: source, checkedAt: checkedAt}, nil
}

// resolveDataSource loads the referenced data source. Problems with the
// reference are added to problems; only storage failures are returned.
func (s *ClientService) resolveDataSource(req *contract.ClientRequest, mode writeMode, problems *apierror.StructuredError) (*entity.DataSource, apierror.ErrorResponse) {
	if req.DataSourceID == nil {
		if mode != modePatch {
			problems.Add("data_source", "This field is required")
		}
		return nil, nil
	}

	if *req.DataSourceID < 1 {
		// Already reported by the struct rules.
		return nil, nil
	}

	source, err := s.SourceRepo.FindByID(*req.DataSourceID)
	if err != nil {
		log.Errorf("failed to fetch data source %d: %v", *req.DataSourceID, err)
		return nil, apierror.InternalServerError
	}

	if source == nil {
		problems.Add("data_source", fmt.Sprintf("Data source %d does not exist", *req.DataSourceID))
		return nil, nil
	}
	return source, nil
}

func (s *ClientService) findClient(id int) (*entity.Client, apierror.ErrorResponse) {
	if id < 1 {
		return nil, apierror.NotFoundError
	}

	client, err := s.ClientRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch client %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if client == nil {
		return nil, apierror.NotFoundError
	}
	return client, nil
}

func (s *ClientService) save(client *entity.Client, mode writeMode) (*contract.ClientResponse, apierror.ErrorResponse) {
	if err := s.ClientRepo.Save(client); err != nil {
		log.Errorf("failed to %s client %s: %v", mode, client.DisplayName(), err)
		return nil, apierror.InternalServerError
	}

	s.Metrics.IncrementClientWrite(mode.String())
	log.Debugf("%s client %d %s", mode, client.ID, client.DisplayName())
	return toClientResponse(client), nil
}

func addIdentifierProblem(problems *apierror.StructuredError, err error) {
	var ierr *validators.IdentifierError
	if errors.As(err, &ierr) {
		problems.Add(ierr.Field, ierr.Message)
	}
}

// applyFull overwrites every user-controlled column of client with req.
func applyFull(client *entity.Client, req *contract.ClientRequest, prepared *preparedWrite) {
	client.FullName = nonEmpty(req.FullName)
	client.ShortName = nonEmpty(req.ShortName)
	client.INN = nonEmpty(req.INN)
	client.KPP = nonEmpty(req.KPP)
	client.OGRN = nonEmpty(req.OGRN)
	client.Address = nonEmpty(req.Address)
	client.OKVED = nonEmpty(req.OKVED)
	client.RegDate = nonEmpty(req.RegDate)
	client.AuthorizedCapital = capitalValue(req)

	client.Status = entity.ClientStatusActive
	if status := utils.StringValue(req.Status); status != "" {
		client.Status = entity.ClientStatus(status)
	}

	client.DataSourceID = prepared.source.ID
	client.DataSource = prepared.source
	if prepared.checkedAt != nil {
		client.LastCheckedAt = prepared.checkedAt
	}
}

// applyPartial overwrites only the columns present in req.
func applyPartial(client *entity.Client, req *contract.ClientRequest, prepared *preparedWrite) {
	if req.FullName != nil {
		client.FullName = nonEmpty(req.FullName)
	}
	if req.ShortName != nil {
		client.ShortName = nonEmpty(req.ShortName)
	}
	if req.INN != nil {
		client.INN = nonEmpty(req.INN)
	}
	if req.KPP != nil {
		client.KPP = nonEmpty(req.KPP)
	}
	if req.OGRN != nil {
		client.OGRN = nonEmpty(req.OGRN)
	}
	if req.Address != nil {
		client.Address = nonEmpty(req.Address)
	}
	if req.OKVED != nil {
		client.OKVED = nonEmpty(req.OKVED)
	}
	if req.RegDate != nil {
		client.RegDate = nonEmpty(req.RegDate)
	}
	if req.AuthorizedCapital != nil {
		client.AuthorizedCapital = capitalValue(req)
	}
	if status := utils.StringValue(req.Status); status != "" {
		client.Status = entity.ClientStatus(status)
	}

	if prepared.source != nil {
		client.DataSourceID = prepared.source.ID
		client.DataSource = prepared.source
	}
	if prepared.checkedAt != nil {
		client.LastCheckedAt = prepared.checkedAt
	}
}

func capitalValue(req *contract.ClientRequest) *string {
	if req.AuthorizedCapital == nil || *req.AuthorizedCapital == "" {
		return nil
	}
	capital := utils.FormatDecimal2(req.AuthorizedCapital.String())
	return &capital
}

// nonEmpty stores empty strings as NULL.
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

func toClientResponse(c *entity.Client) *contract.ClientResponse {
	resp := &contract.ClientResponse{
		ID:                c.ID,
		FullName:          c.FullName,
		ShortName:         c.ShortName,
		INN:               c.INN,
		KPP:               c.KPP,
		OGRN:              c.OGRN,
		Address:           c.Address,
		OKVED:             c.OKVED,
		RegDate:           c.RegDate,
		AuthorizedCapital: c.AuthorizedCapital,
		Status:            string(c.Status),
		DataSourceID:      c.DataSourceID,
		LastCheckedAt:     utils.FormatEpochPtr(c.LastCheckedAt),
		CreatedAt:         utils.FormatEpoch(c.CreatedAt),
		UpdatedAt:         utils.FormatEpoch(c.UpdatedAt),
	}
	if c.DataSource != nil {
		resp.DataSourceName = c.DataSource.Name
	}
	return resp
}
