package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"assetz/docs"
	"assetz/internal/config"
	"assetz/internal/database"
	"assetz/internal/database/migration"
	handlers "assetz/internal/http/handler"
	"assetz/internal/http/middleware"
	"assetz/internal/otel"
	"assetz/internal/repository/postgres"
	"assetz/internal/scheduler"
	"assetz/internal/service"
	"assetz/internal/storage"
)

// @title Assetz API
// @version 1.0
// @BasePath /
func main() {
	cfg := config.Load()
	loc := time.UTC

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		_ = shutdownTracing(context.Background())
	}()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	objStore, err := storage.NewS3(cfg.Storage)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// Repositories
	userRepo := postgres.NewUserPostgres(db)
	locationRepo := postgres.NewLocationPostgres(db)
	departmentRepo := postgres.NewDepartmentPostgres(db)
	categoryRepo := postgres.NewCategoryPostgres(db)
	vendorRepo := postgres.NewVendorPostgres(db)
	assetRepo := postgres.NewAssetPostgres(db)
	documentRepo := postgres.NewDocumentPostgres(db)
	transferRepo := postgres.NewTransferPostgres(db)
	disposalRepo := postgres.NewDisposalPostgres(db)
	maintenanceRepo := postgres.NewMaintenancePostgres(db)
	auditRepo := postgres.NewAuditPostgres(db)
	reportRepo := postgres.NewReportPostgres(db)

	// Services
	tokens := service.NewTokenIssuer(cfg.Auth)
	auditSvc := service.NewAuditService(auditRepo)
	userSvc := service.NewUserService(userRepo, tokens, auditSvc, cfg.Auth.BcryptCost)
	orgSvc := service.NewOrgService(locationRepo, departmentRepo, auditSvc)
	catalogSvc := service.NewCatalogService(categoryRepo, vendorRepo, auditSvc)
	assetSvc := service.NewAssetService(assetRepo, objStore, auditSvc)
	documentSvc := service.NewDocumentService(assetRepo, documentRepo, objStore, auditSvc)
	workflowSvc := service.NewWorkflowService(assetRepo, transferRepo, disposalRepo, auditSvc)
	maintenanceSvc := service.NewMaintenanceService(maintenanceRepo, assetRepo, auditSvc)
	reportSvc := service.NewReportService(reportRepo, assetRepo, auditSvc)

	app := fiber.New(fiber.Config{
		AppName:           "assetz",
		Prefork:           cfg.Server.Workers > 1,
		EnablePrintRoutes: cfg.Server.Debug,
		ErrorHandler:      handlers.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promMW, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, db, handlers.Services{
		Tokens:      tokens,
		Users:       userSvc,
		Org:         orgSvc,
		Catalog:     catalogSvc,
		Assets:      assetSvc,
		Documents:   documentSvc,
		Workflows:   workflowSvc,
		Maintenance: maintenanceSvc,
		Reports:     reportSvc,
		Audit:       auditSvc,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	// Preventive maintenance reminders run in the parent only; prefork
	// children would duplicate the scan.
	if !fiber.IsChild() {
		sched := scheduler.New(maintenanceSvc, loc)
		if err := sched.Start(); err != nil {
			log.Fatalf("failed to start scheduler: %v", err)
		}
		defer sched.Stop()
	}

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
