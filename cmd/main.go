package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mxarte/artweek-backend/config"
	"github.com/mxarte/artweek-backend/database"
	"github.com/mxarte/artweek-backend/internal/auditlog"
	"github.com/mxarte/artweek-backend/internal/event"
	"github.com/mxarte/artweek-backend/internal/gallery"
	"github.com/mxarte/artweek-backend/internal/itinerary"
	"github.com/mxarte/artweek-backend/internal/newsletter"
	"github.com/mxarte/artweek-backend/internal/notification"
	"github.com/mxarte/artweek-backend/internal/submission"
	"github.com/mxarte/artweek-backend/internal/subscriber"
	"github.com/mxarte/artweek-backend/routes"
	"github.com/mxarte/artweek-backend/utils"
)

// @title ArtWeek Backend API
// @version 1.0
// @description Event listings, itineraries, and newsletter for the festival.
// @BasePath /api/v1
func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	// Init Redis (optional: rate-limit store + digest lock)
	if err := utils.InitRedis(cfg); err != nil {
		log.Fatalf("❌ Redis init failed: %v", err)
	}

	// Auto-migrate models
	log.Println("🔄 Running database migrations...")
	if err := db.AutoMigrate(
		&auditlog.AuditLog{},
		&event.Event{},
		&gallery.Gallery{},
		&submission.EventSubmission{},
		&subscriber.Subscriber{},
		&itinerary.Itinerary{},
		&notification.NotificationLog{},
	); err != nil {
		panic(fmt.Sprintf("❌ DB AutoMigrate failed: %v", err))
	}
	log.Println("✅ Database migrations completed")

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://127.0.0.1:5173", cfg.BaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Content-Length", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	notificationSvc, newsletterSvc := routes.Setup(router, cfg)

	// Background consumers: saved-itinerary notifications + daily digest
	ctx := context.Background()
	notification.StartConsumer(ctx, cfg, notificationSvc)
	digestCron := newsletter.StartDigestCron(cfg.DigestCron, newsletterSvc)
	defer digestCron.Stop()

	log.Printf("🚀 Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
