package service

import (
	"clientsapi/cmd/internal/contract"
	"clientsapi/cmd/internal/domain/entity"
	"clientsapi/cmd/internal/utils"
	"clientsapi/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type DataSourceService struct {
	SourceRepo DataSourceRepository
	Validate   *validator.Validate
}

func NewDataSourceService(sourceRepo DataSourceRepository, validate *validator.Validate) *DataSourceService {
	return &DataSourceService{
		SourceRepo: sourceRepo,
		Validate:   validate,
	}
}

func (d *DataSourceService) GetDataSources() ([]*contract.DataSourceResponse, apierror.ErrorResponse) {
	sources, err := d.SourceRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch data sources: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.DataSourceResponse, len(sources))
	for i, source := range sources {
		resp[i] = toDataSourceResponse(source)
	}
	return resp, nil
}

func (d *DataSourceService) GetDataSource(id int) (*contract.DataSourceResponse, apierror.ErrorResponse) {
	source, apierr := d.findDataSource(id)
	if apierr != nil {
		return nil, apierr
	}
	return toDataSourceResponse(source), nil
}

func (d *DataSourceService) CreateDataSource(req *contract.DataSourceRequest) (*contract.DataSourceResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := d.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	now := utils.NowUTC()
	source := &entity.DataSource{
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := d.SourceRepo.Save(source); err != nil {
		log.Errorf("failed to save data source %q: %v", req.Name, err)
		return nil, apierror.InternalServerError
	}
	return toDataSourceResponse(source), nil
}

// DeleteDataSource refuses to delete a data source that clients still reference.
func (d *DataSourceService) DeleteDataSource(id int) apierror.ErrorResponse {
	source, apierr := d.findDataSource(id)
	if apierr != nil {
		return apierr
	}

	count, err := d.SourceRepo.CountClients(source.ID)
	if err != nil {
		log.Errorf("failed to count clients of data source %d: %v", id, err)
		return apierror.InternalServerError
	}

	if count > 0 {
		return apierror.DataSourceInUseError
	}

	if err = d.SourceRepo.Delete(source); err != nil {
		log.Errorf("failed to delete data source %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

func (d *DataSourceService) findDataSource(id int) (*entity.DataSource, apierror.ErrorResponse) {
	if id < 1 {
		return nil, apierror.NotFoundError
	}

	source, err := d.SourceRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch data source %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if source == nil {
		return nil, apierror.NotFoundError
	}
	return source, nil
}

func toDataSourceResponse(d *entity.DataSource) *contract.DataSourceResponse {
	return &contract.DataSourceResponse{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: utils.FormatEpoch(d.CreatedAt),
		UpdatedAt: utils.FormatEpoch(d.UpdatedAt),
	}
}
