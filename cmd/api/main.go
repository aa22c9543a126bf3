package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"portfolioapi/internal/asset"
	"portfolioapi/internal/config"
	"portfolioapi/internal/database"
	"portfolioapi/internal/database/migration"
	handlers "portfolioapi/internal/http/handler"
	"portfolioapi/internal/http/middleware"
	"portfolioapi/internal/logging"
	"portfolioapi/internal/otel"
	"portfolioapi/internal/repository/postgres"
	"portfolioapi/internal/service"
	"portfolioapi/internal/storage"
)

// @title Portfolio Content API
// @version 1.0
// @BasePath /
func main() {
	cfg := config.Load()
	log := logging.NewJSON(os.Stdout, cfg.Location())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		fatal(ctx, log, "tracing_init_failed", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	policy, err := service.ParseContactPolicy(cfg.ContactPolicy)
	if err != nil {
		fatal(ctx, log, "invalid_config", err)
	}

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		fatal(ctx, log, "db_connect_failed", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
		fatal(ctx, log, "db_migration_failed", err)
	}

	store, err := storage.Open(cfg.Media, cfg.MinIO)
	if err != nil {
		fatal(ctx, log, "storage_init_failed", err)
	}

	contentSvc := service.NewContentService(postgres.NewContentPostgres(db), asset.NewResolver(store))
	contactSvc := service.NewContactService(postgres.NewContactPostgres(db), policy)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	prom, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		fatal(ctx, log, "metrics_init_failed", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log.With("component", "http")))
	app.Use(otelfiber.Middleware())
	app.Use(prom.Handler())
	app.Use(middleware.CORS(cfg.CORSOrigins))

	app.Get("/metrics", middleware.MetricsHandler(reg))

	handlers.RegisterRoutes(app, handlers.Deps{
		DB:            db,
		Content:       contentSvc,
		Contact:       contactSvc,
		PublicBaseURL: cfg.PublicBaseURL,
	})

	if cfg.Media.Serve && cfg.Media.Driver == "local" {
		app.Static(storage.PathPrefix(cfg.Media, cfg.MinIO), cfg.Media.Root, fiber.Static{ByteRange: true})
	}

	app.Get("/swagger/*", handlers.SwaggerUI(cfg.AppHost))

	go func() {
		<-ctx.Done()
		log.Info(context.Background(), "server_shutdown")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	addr := ":" + cfg.Port
	log.Info(ctx, "server_start", "addr", addr, "storage_driver", cfg.Media.Driver, "contact_policy", string(policy))
	if err := app.Listen(addr); err != nil {
		fatal(ctx, log, "server_failed", err)
	}
}

func fatal(ctx context.Context, log logging.Logger, msg string, err error) {
	log.Error(ctx, msg, "error", err.Error())
	os.Exit(1)
}
