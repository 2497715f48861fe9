package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/slack-go/slack"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"taskflow.app/server/common/id"
	"taskflow.app/server/common/logger"
	"taskflow.app/server/common/otel"
	"taskflow.app/server/core/config"
	"taskflow.app/server/core/db"
	"taskflow.app/server/internal/http/middleware"
	httprouter "taskflow.app/server/internal/http/router"
	"taskflow.app/server/internal/ingest"
	"taskflow.app/server/internal/queue"
	"taskflow.app/server/internal/service"
	"taskflow.app/server/internal/store"
	"taskflow.app/server/internal/store/memory"
	"taskflow.app/server/internal/store/postgres"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		// Can't use slog yet, OTel failed before logger setup
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "taskflow starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	var stores store.Provider
	if cfg.DatabaseEnabled() {
		database, err := db.New(ctx, cfg.DB)
		if err != nil {
			slog.ErrorContext(ctx, "failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer database.Close()
		slog.InfoContext(ctx, "database connected")
		stores = postgres.NewStores(database)
	} else {
		slog.InfoContext(ctx, "no DATABASE_URL set, using in-memory store")
		stores = memory.NewStores(memory.NewDB())
	}

	var producer queue.Producer
	if cfg.Redis.Enabled() {
		redisOpts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
			os.Exit(1)
		}
		redisClient := redis.NewClient(redisOpts)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
			os.Exit(1)
		}
		slog.InfoContext(ctx, "redis connected", "stream", cfg.Redis.Stream)

		producer = queue.NewRedisProducer(redisClient, cfg.Redis.Stream, slog.Default())
		defer producer.Close()
	}

	services := service.NewServices(service.ServicesConfig{
		Stores:   stores,
		Producer: producer,
	})

	if err := service.EnsureDefaults(ctx, stores, service.BootstrapConfig(cfg.Bootstrap)); err != nil {
		slog.ErrorContext(ctx, "failed to seed defaults", "error", err)
		os.Exit(1)
	}

	ingestCtx, stopIngest := context.WithCancel(ctx)
	defer stopIngest()
	go buildScheduler(cfg, services, stores).Run(ingestCtx)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")
	stopIngest()

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func buildScheduler(cfg config.Config, services *service.Services, stores store.Provider) *ingest.Scheduler {
	var ingestors []ingest.Ingestor

	if cfg.IMAP.Enabled() {
		source := ingest.NewIMAPSource(cfg.IMAP)
		ingestors = append(ingestors, ingest.NewEmailIngestor(
			source,
			services.Tasks(),
			services.Comments(),
			stores.Tasks(),
			stores.Users(),
			cfg.IMAP.WorkspaceID,
		))
	}

	if cfg.Slack.Enabled() {
		client := slack.New(cfg.Slack.Token)
		ingestors = append(ingestors, ingest.NewSlackIngestor(
			client,
			services.Tasks(),
			services.Notifier(),
			stores.Tasks(),
			cfg.Slack.ChannelID,
			cfg.Slack.WorkspaceID,
		))
	}

	return ingest.NewScheduler(cfg.Ingest.Interval, ingestors...)
}

func setupRouter(cfg config.Config, services *service.Services) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates the span, Recovery catches panics, Logger
	// logs with trace context.
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	httprouter.SetupRoutes(router, services)

	return router
}
