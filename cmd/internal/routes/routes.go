package routes

import (
	"clientsapi/cmd/internal/http/handler"

	"github.com/labstack/echo/v4"
)

// Register mounts the client and data source APIs on e. Every route answers
// both with and without the trailing slash.
func Register(e *echo.Echo, clients *handler.DefaultClientRoute, sources *handler.DefaultDataSourceRoute) {
	api := e.Group("/api")

	// Clients
	both(api.GET, "/clients", clients.GetClients)
	both(api.POST, "/clients", clients.CreateClient)
	both(api.GET, "/clients/:id", clients.GetClient)
	both(api.PUT, "/clients/:id", clients.ReplaceClient)
	both(api.PATCH, "/clients/:id", clients.PatchClient)
	both(api.DELETE, "/clients/:id", clients.DeleteClient)

	// Data sources
	both(api.GET, "/data-sources", sources.GetDataSources)
	both(api.POST, "/data-sources", sources.CreateDataSource)
	both(api.GET, "/data-sources/:id", sources.GetDataSource)
	both(api.DELETE, "/data-sources/:id", sources.DeleteDataSource)
}

type routeFunc func(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route

func both(add routeFunc, path string, h echo.HandlerFunc) {
	add(path, h)
	add(path+"/", h)
}
