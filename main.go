package main

import (
	"fmt"
	"log"

	"hsg-reporting/configs"
	"hsg-reporting/pkg/clock"
	"hsg-reporting/pkg/mailer"
	"hsg-reporting/repository"
	"hsg-reporting/routes"
	"hsg-reporting/services"
	"hsg-reporting/ws"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedLookups(); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}

	clk := clock.New(cfg.Timezone)
	sender := mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.FromEmail, cfg.AdminInbox)

	// ✅ Status feed hub
	feedHub := ws.NewFeedHub()
	go feedHub.Run()

	// Weekly digest: cron เช็คทุกชั่วโมง ตัว service กันส่งซ้ำเอง (วันละครั้งเป็นอย่างมาก)
	subRepo := repository.NewSubmissionRepository(db)
	reportRepo := repository.NewReportLogRepository(db)
	digest := services.NewDigestService(subRepo, reportRepo, sender, clk, cfg.AdminInbox)

	cr := cron.New()
	if _, err := cr.AddFunc("@hourly", func() {
		if _, err := digest.RunIfDue(); err != nil {
			log.Println("weekly digest failed:", err)
		}
	}); err != nil {
		log.Fatalf("schedule digest failed: %v", err)
	}
	cr.Start()

	// HTTP
	r := gin.Default()

	// ✅ Register API routes
	routes.RegisterRoutes(r, db, cfg, clk, sender, feedHub, digest)

	// ✅ Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
