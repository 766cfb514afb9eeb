package routes

import (
	"hsg-reporting/configs"
	"hsg-reporting/controllers"
	"hsg-reporting/middlewares"
	"hsg-reporting/pkg/clock"
	"hsg-reporting/pkg/mailer"
	"hsg-reporting/repository"
	"hsg-reporting/services"
	"hsg-reporting/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, clk clock.Clock, sender mailer.Sender, feedHub *ws.FeedHub, digest *services.DigestService) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	subRepo := repository.NewSubmissionRepository(db)
	logRepo := repository.NewStatusLogRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Services
	sla := services.SLAOffsets{High: cfg.SLAHigh, Medium: cfg.SLAMedium, Low: cfg.SLALow}
	subService := services.NewSubmissionService(subRepo, sender, clk, sla)
	statusService := services.NewStatusService(db, subRepo, logRepo, sender, clk)
	projector := services.NewProjectorService(db, assetRepo, bookingRepo)
	bookingService := services.NewBookingService(db, bookingRepo, assetRepo, projector, clk)

	// Controllers
	subCtrl := controllers.NewSubmissionController(subService)
	bookingCtrl := controllers.NewBookingController(bookingService, projector, assetRepo, clk)
	adminCtrl := controllers.NewAdminController(cfg, db, statusService, subService, logRepo, digest, feedHub)

	// Issues (public)
	r.POST("/issues", subCtrl.Create)
	r.GET("/issues", subCtrl.List)
	r.GET("/issues/export", subCtrl.ExportCSV)
	r.GET("/issues/stats", subCtrl.Stats)

	// Assets & bookings (public)
	r.GET("/assets", bookingCtrl.ListAssets)
	r.GET("/assets/:id/availability", bookingCtrl.Availability)
	r.GET("/assets/:id/next-available", bookingCtrl.NextAvailable)
	r.POST("/bookings", bookingCtrl.Create)
	r.GET("/bookings", bookingCtrl.List)

	// Admin: login อยู่นอก group ที่เหลือต้องมี token role=admin
	r.POST("/admin/login", adminCtrl.Login)

	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/issues", adminCtrl.Issues)
		admin.PATCH("/issues/:id/status", adminCtrl.UpdateStatus)
		admin.GET("/status-log", adminCtrl.StatusLog)
		admin.POST("/digest/run", adminCtrl.RunDigest)
		admin.GET("/feed", adminCtrl.Feed)
	}
}
