package main

import (
	"context"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"textvault/internal/config"
	"textvault/internal/database"
	"textvault/internal/database/migration"
	"textvault/internal/export"
	handlers "textvault/internal/http/handler"
	"textvault/internal/http/middleware"
	"textvault/internal/ocr"
	appotel "textvault/internal/otel"
	"textvault/internal/pkg/logger"
	"textvault/internal/repository/postgres"
	"textvault/internal/service"
	"textvault/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	log := logger.New(cfg.Log)
	defer log.Sync()

	ctx := context.Background()

	shutdownTracing, err := appotel.Init(ctx, cfg.Otel, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	// PostgreSQL connection (pooled via database/sql, traced via otelsql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// S3-compatible object storage for the original image uploads
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatal("failed to initialize object storage", zap.Error(err))
	}

	engine := ocr.NewTesseract(cfg.OCR.Languages)

	// Repositories
	docRepo := postgres.NewDocumentPostgres(db)
	folderRepo := postgres.NewFolderPostgres(db)
	userRepo := postgres.NewUserPostgres(db)
	analyticsRepo := postgres.NewAnalyticsPostgres(db)

	// Export registry: the txt/csv/pdf download formats
	registry := export.NewRegistry()

	// Services
	svcs := handlers.Services{
		Auth:      service.NewAuthService(userRepo, cfg.Auth),
		Documents: service.NewDocumentService(docRepo),
		Folders:   service.NewFolderService(folderRepo),
		Ingest:    service.NewIngestService(objStore, engine, docRepo, cfg.OCR.MaxUploadMB),
		Export:    service.NewExportService(docRepo, registry),
		Search:    service.NewSearchService(docRepo),
		Analytics: service.NewAnalyticsService(analyticsRepo),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    int(cfg.OCR.MaxUploadMB+1) * 1024 * 1024,
	})

	// Global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(otelfiber.Middleware())

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(collectors.NewGoCollector())
	promReg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promMiddleware, err := middleware.NewPrometheusMiddleware(promReg)
	if err != nil {
		log.Fatal("failed to register metrics", zap.Error(err))
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(promReg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, db, cfg.Auth.JWTSecret, svcs)

	addr := ":" + cfg.Port
	log.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
