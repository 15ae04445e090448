package router

import (
	"time"

	"github.com/jaksoftwares/ReceiptPro/internal/config"
	"github.com/jaksoftwares/ReceiptPro/internal/handler"
	"github.com/jaksoftwares/ReceiptPro/internal/middleware"
	"github.com/jaksoftwares/ReceiptPro/internal/pdf"
	"github.com/jaksoftwares/ReceiptPro/internal/render"
	"github.com/jaksoftwares/ReceiptPro/internal/repository"
	"github.com/jaksoftwares/ReceiptPro/internal/service"
	"github.com/jaksoftwares/ReceiptPro/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← Redis
func New(cfg *config.Config, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	kv := repository.NewRedisKV(rdb)
	profileRepo := repository.NewProfileRepository(kv)
	receiptRepo := repository.NewReceiptRepository(kv)
	invoiceRepo := repository.NewInvoiceRepository(kv)
	settingsRepo := repository.NewSettingsRepository(kv)

	// ── Services ─────────────────────────────────────────────────────────────
	receiptSvc := service.NewReceiptService(receiptRepo, profileRepo, settingsRepo)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, profileRepo, settingsRepo)
	profileSvc := service.NewProfileService(profileRepo)
	settingsSvc := service.NewSettingsService(settingsRepo)
	dashboardSvc := service.NewDashboardService(receiptRepo, invoiceRepo)
	dataExportSvc := service.NewDataExportService(profileRepo, receiptRepo, invoiceRepo, settingsRepo)

	exporter := pdf.NewExporter(render.NewTemplateRenderer())
	exportSvc := service.NewExportService(receiptSvc, invoiceSvc, exporter, cfg.PDFStoragePath)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)
	emailSvc := service.NewEmailService(receiptSvc, invoiceSvc, exportSvc, settingsRepo, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	receiptsH := handler.NewReceiptsHandler(receiptSvc, exportSvc, emailSvc)
	invoicesH := handler.NewInvoicesHandler(invoiceSvc, exportSvc, emailSvc)
	profilesH := handler.NewProfilesHandler(profileSvc)
	settingsH := handler.NewSettingsHandler(settingsSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	dataExportH := handler.NewDataExportHandler(dataExportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(rdb))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	{
		receipts := v1.Group("/receipts")
		{
			receipts.POST("", receiptsH.Create)
			receipts.GET("", receiptsH.List)
			receipts.GET("/:id", receiptsH.Get)
			receipts.PUT("/:id", receiptsH.Update)
			receipts.DELETE("/:id", receiptsH.Delete)
			receipts.POST("/:id/export", receiptsH.Export)
			receipts.POST("/:id/email", receiptsH.Email)
		}

		invoices := v1.Group("/invoices")
		{
			invoices.POST("", invoicesH.Create)
			invoices.GET("", invoicesH.List)
			invoices.GET("/:id", invoicesH.Get)
			invoices.PUT("/:id", invoicesH.Update)
			invoices.DELETE("/:id", invoicesH.Delete)
			invoices.POST("/:id/export", invoicesH.Export)
			invoices.POST("/:id/email", invoicesH.Email)
		}

		profiles := v1.Group("/profiles")
		{
			// "current" must register before the :id wildcard
			profiles.GET("/current", profilesH.GetCurrent)
			profiles.PUT("/current", profilesH.SetCurrent)
			profiles.POST("", profilesH.Create)
			profiles.GET("", profilesH.List)
			profiles.GET("/:id", profilesH.Get)
			profiles.PUT("/:id", profilesH.Update)
			profiles.DELETE("/:id", profilesH.Delete)
		}

		v1.GET("/settings", settingsH.Get)
		v1.PUT("/settings", settingsH.Update)

		v1.GET("/dashboard/stats", dashboardH.Stats)
		v1.GET("/export", dataExportH.Bundle)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
