package handler

import (
	"net/http"
	"strconv"

	"clientsapi/cmd/internal/contract"
	"clientsapi/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type DataSourceService interface {
	GetDataSources() ([]*contract.DataSourceResponse, apierror.ErrorResponse)
	GetDataSource(id int) (*contract.DataSourceResponse, apierror.ErrorResponse)
	CreateDataSource(req *contract.DataSourceRequest) (*contract.DataSourceResponse, apierror.ErrorResponse)
	DeleteDataSource(id int) apierror.ErrorResponse
}

type DefaultDataSourceRoute struct {
	DataSourceService DataSourceService
}

func NewDataSourceDefault(dataSourceService DataSourceService) *DefaultDataSourceRoute {
	return &DefaultDataSourceRoute{DataSourceService: dataSourceService}
}

func (d *DefaultDataSourceRoute) GetDataSources(c echo.Context) error {
	sources, apierr := d.DataSourceService.GetDataSources()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"data_sources": sources}
	return c.JSON(http.StatusOK, &resp)
}

func (d *DefaultDataSourceRoute) GetDataSource(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	source, apierr := d.DataSourceService.GetDataSource(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, source)
}

func (d *DefaultDataSourceRoute) CreateDataSource(c echo.Context) error {
	var req contract.DataSourceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	source, apierr := d.DataSourceService.CreateDataSource(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, source)
}

func (d *DefaultDataSourceRoute) DeleteDataSource(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	if apierr := d.DataSourceService.DeleteDataSource(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}
