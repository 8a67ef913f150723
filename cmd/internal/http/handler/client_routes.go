package handler

import (
	"context"
	"net/http"
	"strconv"

	"clientsapi/cmd/internal/contract"
	"clientsapi/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ClientService interface {
	GetClients(page int) (*contract.ClientPageResponse, apierror.ErrorResponse)
	GetClient(id int) (*contract.ClientResponse, apierror.ErrorResponse)
	CreateClient(ctx context.Context, req *contract.ClientRequest) (*contract.ClientResponse, apierror.ErrorResponse)
	ReplaceClient(ctx context.Context, id int, req *contract.ClientRequest) (*contract.ClientResponse, apierror.ErrorResponse)
	PatchClient(ctx context.Context, id int, req *contract.ClientRequest) (*contract.ClientResponse, apierror.ErrorResponse)
	DeleteClient(id int) apierror.ErrorResponse
}

type DefaultClientRoute struct {
	ClientService ClientService
}

func NewClientDefault(clientService ClientService) *DefaultClientRoute {
	return &DefaultClientRoute{ClientService: clientService}
}

func (cr *DefaultClientRoute) GetClients(c echo.Context) error {
	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(apierror.InvalidPageError.Code(), apierror.InvalidPageError)
		}
		page = parsed
	}

	clients, apierr := cr.ClientService.GetClients(page)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, clients)
}

func (cr *DefaultClientRoute) GetClient(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	client, apierr := cr.ClientService.GetClient(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, client)
}

func (cr *DefaultClientRoute) CreateClient(c echo.Context) error {
	var req contract.ClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	client, apierr := cr.ClientService.CreateClient(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, client)
}

func (cr *DefaultClientRoute) ReplaceClient(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.ClientRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	client, apierr := cr.ClientService.ReplaceClient(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, client)
}

func (cr *DefaultClientRoute) PatchClient(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.ClientRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	client, apierr := cr.ClientService.PatchClient(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, client)
}

func (cr *DefaultClientRoute) DeleteClient(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	if apierr := cr.ClientService.DeleteClient(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}
