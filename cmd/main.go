package main

//
//  @title           tradeseed API
//  @version         1.0
//  @description     Read and append access to the synthetic trading analytics collections.
//  @termsOfService  https://github.com/guttosm/tradeseed
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/tradeseed
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        collections
//  @tag.description Endpoints for reading and appending seeded documents
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/guttosm/tradeseed/config"
	_ "github.com/guttosm/tradeseed/docs" // swagger docs
	"github.com/guttosm/tradeseed/internal/app"
	"github.com/guttosm/tradeseed/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., DB connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Error().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// seedFunc and serveFunc are indirections for unit testing.
var (
	seedFunc  = runSeed
	serveFunc = runServe
)

// newRootCmd builds the command tree.
//
// Commands:
//   - (none):  wipes and reseeds every collection, exiting non-zero on failure.
//   - serve:   starts the REST API over the seeded collections.
//
// Flags:
//   - serve --port: Port for the API server. Defaults to SERVER_PORT.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tradeseed",
		Short: "Seed the trading analytics database with synthetic documents",
		Long: `Wipes the twenty trading analytics collections and refills each with
100 freshly generated documents.

Examples:
  tradeseed
  tradeseed serve --port 9090`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			// Load configuration from environment or .env file
			config.LoadConfig()
			logger.Init()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return seedFunc(cmd.Context())
		},
	}

	var port string
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if port == "" {
				port = config.AppConfig.Server.Port
			}
			return serveFunc(cmd.Context(), port)
		},
	}
	serve.Flags().StringVar(&port, "port", "", "Port for the API server (default SERVER_PORT)")
	root.AddCommand(serve)

	return root
}

func runSeed(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := app.RunSeed(ctx, config.AppConfig, prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}
	logger.L().Info().Int("collections", len(report.Collections)).Dur("elapsed", report.Elapsed).Msg("database seeded")
	return nil
}

func runServe(ctx context.Context, port string) error {
	logger.L().Info().Msg("starting API server")

	router, cleanup, err := app.InitializeApp(ctx)
	if err != nil {
		return err
	}

	server := startServer(router, port)
	gracefulShutdown(ctx, server, cleanup)
	return nil
}

// main is the entry point of the tradeseed application.
func main() {
	root := newRootCmd()
	if err := root.ExecuteContext(context.Background()); err != nil {
		root.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
