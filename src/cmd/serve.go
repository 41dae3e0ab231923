package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"fingenius/src/api"
	"fingenius/src/api/controllers"
	"fingenius/src/config"
	"fingenius/src/database"
	"fingenius/src/repositories"
	"fingenius/src/services"
	"fingenius/src/utils"
	aws_handler "fingenius/src/utils/aws"
	redis_utils "fingenius/src/utils/redis"
	"fingenius/src/utils/render"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("error while loading config: %w", err)
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg)
	},
}

func newLogger(cfg *config.Config) *logrus.Logger {
	level := utils.ParseLevel(cfg.Service.LogLevel)
	if cfg.Service.Debug {
		level = logrus.DebugLevel
	}
	return utils.NewLogger(level, cfg.Service.LogFile != "", cfg.Service.LogFile)
}

func resolveSecrets(ctx context.Context, cfg *config.Config) error {
	if cfg.AWS.DBSecretID == "" {
		return nil
	}
	awsHandler, err := aws_handler.NewAWSHandler(cfg.AWS.Region)
	if err != nil {
		return err
	}
	return cfg.ResolveSecrets(ctx, awsHandler.Secrets)
}

func serve(ctx context.Context, cfg *config.Config) error {
	logger := newLogger(cfg)
	if err := resolveSecrets(ctx, cfg); err != nil {
		return err
	}

	var closers []func()
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}()

	var repo repositories.DashboardRepository
	switch cfg.Dashboard.Source {
	case utils.DashboardSourcePostgres:
		pool, err := database.SetupDB(ctx, cfg)
		if err != nil {
			return err
		}
		closers = append(closers, pool.Close)
		repo = repositories.NewPostgresDashboardRepository(pool)
	case utils.DashboardSourceMock:
		repo = repositories.NewMockDashboardRepository()
	default:
		return fmt.Errorf("unknown dashboard source %q", cfg.Dashboard.Source)
	}

	renderer, err := render.NewRenderer(render.WithWkhtmltopdfPath(cfg.Render.WkhtmltopdfPath))
	if err != nil {
		return err
	}

	opts := []services.DashboardOption{services.WithMarkdownRenderer(renderer)}
	if cfg.Databases.Redis.Enabled {
		handler, err := redis_utils.NewRedisHandler(ctx, cfg)
		if err != nil {
			return err
		}
		closers = append(closers, func() { _ = handler.Close() })
		opts = append(opts, services.WithSnapshotCache(
			services.NewRedisSnapshotCache(handler, cfg.Dashboard.CacheTTL, cfg.Service.Name, cfg.Dashboard.Source, cfg.Dashboard.Currency)))
	}

	dashboard, err := services.NewDashboardService(repo, cfg.Dashboard, logger, opts...)
	if err != nil {
		return err
	}
	closers = append(closers, dashboard.Close)

	server := api.NewServer(cfg, controllers.NewController(dashboard, renderer), logger)
	httpServer := api.NewHTTPServer(cfg, server)

	errC := make(chan error, 1)
	go func() {
		logger.WithFields(logrus.Fields{"port": cfg.Service.Port, "source": cfg.Dashboard.Source}).Info("starting server")

		// "ListenAndServe always returns a non-nil error. After Shutdown or Close, the returned error is
		// ErrServerClosed."
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
		close(errC)
	}()

	select {
	case err := <-errC:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return <-errC
}
