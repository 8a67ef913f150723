package middleware

import (
	"errors"
	"net/http"

	"clientsapi/cmd/internal/metrics"

	"github.com/labstack/echo/v4"
)

// NewMetricsMiddleware counts every handled request by method, route
// template and final status code.
func NewMetricsMiddleware(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			status := c.Response().Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				} else if !c.Response().Committed {
					status = http.StatusInternalServerError
				}
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			m.IncrementHTTPRequest(c.Request().Method, route, status)
			return err
		}
	}
}
