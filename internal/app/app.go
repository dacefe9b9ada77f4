package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/driveahead/external/jolpica"
	"github.com/riskibarqy/driveahead/internal/config"
	"github.com/riskibarqy/driveahead/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/driveahead/internal/interfaces/httpapi"
	"github.com/riskibarqy/driveahead/internal/platform/logging"
	"github.com/riskibarqy/driveahead/internal/platform/metrics"
	"github.com/riskibarqy/driveahead/internal/platform/resilience"
	"github.com/riskibarqy/driveahead/internal/scheduler"
	"github.com/riskibarqy/driveahead/internal/usecase"
)

const metricsNamespace = "driveahead"

// Container holds the wired dependencies shared by the API server and the CLI.
type Container struct {
	Config    config.Config
	Logger    *logging.Logger
	Metrics   *metrics.Registry
	Client    *jolpica.Client
	Standings *usecase.StandingsService
}

func NewContainer(cfg config.Config, logger *logging.Logger) (*Container, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var registry *metrics.Registry
	if cfg.MetricsEnabled {
		registry = metrics.New(metricsNamespace)
	}

	client, err := jolpica.NewClient(jolpica.ClientConfig{
		BaseURL:   cfg.JolpicaBaseURL,
		Timeout:   cfg.JolpicaTimeout,
		RateLimit: cfg.JolpicaRateLimit,
		UserAgent: cfg.JolpicaUserAgent,
		CacheTTL:  cfg.CacheTTL,
		Logger:    logger.Named("jolpica"),
		Metrics:   registry,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.JolpicaCircuitEnabled,
			FailureThreshold: cfg.JolpicaCircuitFailureCount,
			OpenTimeout:      cfg.JolpicaCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.JolpicaCircuitHalfOpenMaxReq,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create jolpica client: %w", err)
	}

	standings := usecase.NewStandingsService(
		client,
		memory.NewFallbackRepository(memory.DefaultFallbackSeed()),
		usecase.StandingsServiceConfig{
			LiveResultsEnabled: cfg.LiveResultsEnabled,
			SeasonStartMonth:   cfg.SeasonStartMonth,
			WarmWorkers:        cfg.CacheWarmWorkers,
			Logger:             logger.Named("standings"),
			Metrics:            registry,
		},
	)

	return &Container{
		Config:    cfg,
		Logger:    logger,
		Metrics:   registry,
		Client:    client,
		Standings: standings,
	}, nil
}

func (c *Container) NewHTTPServer() (*http.Server, error) {
	var metricsHandler http.Handler
	if c.Metrics != nil {
		metricsHandler = c.Metrics.Handler()
	}

	handler := httpapi.NewHandler(c.Standings, c.Client, c.Config.ServiceVersion, c.Logger)
	router := httpapi.NewRouter(handler, c.Logger.Named("http"), metricsHandler, c.Config.SwaggerEnabled, c.Config.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         c.Config.HTTPAddr,
		Handler:      router,
		ReadTimeout:  c.Config.ReadTimeout,
		WriteTimeout: c.Config.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func (c *Container) NewScheduler() (*scheduler.Scheduler, error) {
	s := scheduler.New(c.Standings, c.Logger.Named("scheduler"))
	if err := s.ScheduleWarm(c.Config.CacheWarmSchedule); err != nil {
		return nil, err
	}
	return s, nil
}
