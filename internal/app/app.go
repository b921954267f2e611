package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/guttosm/tradeseed/config"
	"github.com/guttosm/tradeseed/internal/api"
	"github.com/guttosm/tradeseed/internal/logger"
	"github.com/guttosm/tradeseed/internal/metrics"
	"github.com/guttosm/tradeseed/internal/service"
)

const closeTimeout = 5 * time.Second

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to MongoDB using InitMongo().
//   - Initializes the repository layer (DocumentRepository).
//   - Creates the service and HTTP handler layers.
//   - Configures the Gin router with all API routes and request metrics.
//   - Registers health and readiness probes and the /metrics endpoint.
//   - Provides a cleanup function that disconnects the Mongo client.
func InitializeApp(ctx context.Context) (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// indirection for unit testing
	db, err := mongoOpener(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize mongo: %w", err)
	}

	repo := newRepository(db)
	svc := service.NewCollectionService(repo)
	handler := api.NewHandler(svc)

	// /metrics serves only this registry.
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	rec := metrics.New(reg)

	router := api.NewRouter(handler, rec)

	healthHandler := api.NewHealthHandler(repo.Ping)
	healthHandler.Register(router)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	cleanup := func() {
		cctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		if err := repo.Close(cctx); err != nil {
			logger.L().Warn().Err(err).Msg("mongo disconnect failed")
		}
	}

	return router, cleanup, nil
}
