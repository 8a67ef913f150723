package main

import (
	"context"
	"errors"
	"net/http"

	"clientsapi/cmd/internal/config"
	"clientsapi/cmd/internal/domain/sqlite"
	"clientsapi/cmd/internal/domain/sqlite/repository"
	"clientsapi/cmd/internal/http/handler"
	metricsmw "clientsapi/cmd/internal/http/middleware"
	"clientsapi/cmd/internal/infrastructure/dadata"
	"clientsapi/cmd/internal/metrics"
	"clientsapi/cmd/internal/routes"
	"clientsapi/cmd/internal/service"
	"clientsapi/cmd/internal/utils/validators"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Loads env vars depending on environment
	if err := config.LoadEnv(context.Background()); err != nil {
		log.Fatalf("failed to load environment: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if !cfg.IsProduction() {
		log.SetLevel(log.DEBUG)
	}

	// Init SQLite
	db, err := sqlite.Init(cfg.DBPath)
	if err != nil {
		panic(err)
	}

	if cfg.DaDataAPIKey == "" {
		log.Warn("DADATA_API_KEY is not set, registry enrichment is disabled")
	}

	validate := validators.New()
	m := metrics.New(prometheus.DefaultRegisterer)
	registry := dadata.NewClient(cfg.DaDataAPIKey, cfg.DaDataBaseURL, cfg.LookupTimeout())

	// Repos
	clientRepo := repository.NewClientRepository(db)
	sourceRepo := repository.NewDataSourceRepository(db)

	// Services
	enricher := service.NewEnricher(registry, m)
	clientService := service.NewClientService(clientRepo, sourceRepo, enricher, validate, m)
	sourceService := service.NewDataSourceService(sourceRepo, validate)

	e := echo.New()
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit(cfg.BodyLimit))
	e.Use(metricsmw.NewMetricsMiddleware(m))

	routes.Register(e, handler.NewClientDefault(clientService), handler.NewDataSourceDefault(sourceService))

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func healthCheckRoute(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
