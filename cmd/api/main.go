package main

import (
	"context"
	"log"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cybercorner/internal/config"
	"cybercorner/internal/database"
	"cybercorner/internal/database/migration"
	handlers "cybercorner/internal/http/handler"
	"cybercorner/internal/http/middleware"
	"cybercorner/internal/otel"
	"cybercorner/internal/repository/postgres"
	"cybercorner/internal/seed"
	"cybercorner/internal/service"
	"cybercorner/internal/storage"
	"cybercorner/internal/upload"
)

// Uploads can be 5 MiB plus form fields and multipart framing, so the body
// limit sits above the per-file cap; oversized files are rejected by the
// upload pipeline with a 400, not by Fiber with a 413.
const bodyLimit = 8 << 20

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	var store storage.Storage
	switch cfg.StorageDriver {
	case "minio":
		store, err = storage.NewMinIO(cfg.MinIO)
	default:
		store, err = storage.NewDisk(cfg.UploadDir)
	}
	if err != nil {
		log.Fatalf("failed to initialize storage: %v", err)
	}

	adminRepo := postgres.NewAdminPostgres(db)
	requestRepo := postgres.NewServiceRequestPostgres(db)
	noticeRepo := postgres.NewNoticePostgres(db)

	authSvc := service.NewAuthService(adminRepo, cfg.JWTSecret)
	requestSvc := service.NewServiceRequestService(requestRepo, upload.NewPipeline(store))
	noticeSvc := service.NewNoticeService(noticeRepo)

	if cfg.SeedDemoData {
		if err := seed.Run(ctx, adminRepo, noticeRepo); err != nil {
			log.Printf("seeding failed, continuing without demo data: %v", err)
		}
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    bodyLimit,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promMw, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		log.Fatalf("failed to initialize metrics: %v", err)
	}
	app.Use(promMw.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, db, authSvc, requestSvc, noticeSvc, store, cfg.Production())

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
