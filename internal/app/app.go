package app

import (
	"fmt"
	"net/http"

	"github.com/panjf2000/ants/v2"

	"github.com/Gedeon250/football-api-app/external/footballdata"
	"github.com/Gedeon250/football-api-app/internal/config"
	"github.com/Gedeon250/football-api-app/internal/infrastructure/repository/memory"
	"github.com/Gedeon250/football-api-app/internal/interfaces/httpapi"
	"github.com/Gedeon250/football-api-app/internal/observability"
	"github.com/Gedeon250/football-api-app/internal/platform/logging"
	"github.com/Gedeon250/football-api-app/internal/usecase"
)

// Runtime is the HTTP server together with the resources it owns.
type Runtime struct {
	Server  *http.Server
	Metrics *observability.Metrics
	pool    *ants.Pool
}

// Close releases the worker pool. Call it after the server has shut down.
func (r *Runtime) Close() {
	if r == nil || r.pool == nil {
		return
	}
	r.pool.Release()
}

func NewRuntime(cfg config.Config, logger *logging.Logger) (*Runtime, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	var (
		metrics        *observability.Metrics
		recorder       usecase.ResultRecorder
		observer       footballdata.Observer
		metricsHandler http.Handler
	)
	if cfg.MetricsEnabled {
		metrics = observability.NewMetrics(cfg.ServiceName)
		recorder = metrics
		observer = metrics
		metricsHandler = metrics.Handler()
	}

	client := footballdata.NewClient(footballdata.ClientConfig{
		BaseURL:        cfg.FootballAPIBaseURL,
		Token:          cfg.FootballAPIKey,
		Timeout:        cfg.FootballAPITimeout,
		Logger:         logger,
		Observer:       observer,
		CircuitBreaker: cfg.FootballAPICircuit,
	})
	if !client.HasCredential() {
		logger.Warn("FOOTBALL_API_KEY not set; live and upcoming matches use sample data")
	}

	provider := usecase.NewDataProvider(
		client,
		memory.NewFallbackRepository(),
		usecase.ProviderConfig{
			CompetitionsTTL: cfg.CompetitionsCacheTTL,
			Location:        cfg.DisplayLocation,
		},
		logger,
		recorder,
	)

	pool, err := ants.NewPool(cfg.HomeWorkerPoolSize)
	if err != nil {
		return nil, fmt.Errorf("create home worker pool: %w", err)
	}

	homeSvc := usecase.NewHomeService(provider, pool, memory.SeedCompetitions, logger)
	referenceSvc := usecase.NewReferenceService(memory.NewTeamRepository(memory.SeedRosters(), memory.SeedProfiles()))

	handler, err := httpapi.NewHandler(provider, homeSvc, referenceSvc, logger)
	if err != nil {
		pool.Release()
		return nil, fmt.Errorf("build http handler: %w", err)
	}
	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		MetricsHandler:     metricsHandler,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &Runtime{
		Server:  server,
		Metrics: metrics,
		pool:    pool,
	}, nil
}
