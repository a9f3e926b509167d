package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mxarte/artweek-backend/config"
	"github.com/mxarte/artweek-backend/database"
	"github.com/mxarte/artweek-backend/internal/admin"
	"github.com/mxarte/artweek-backend/internal/auditlog"
	"github.com/mxarte/artweek-backend/internal/event"
	"github.com/mxarte/artweek-backend/internal/gallery"
	"github.com/mxarte/artweek-backend/internal/itinerary"
	"github.com/mxarte/artweek-backend/internal/newsletter"
	"github.com/mxarte/artweek-backend/internal/notification"
	"github.com/mxarte/artweek-backend/internal/reports"
	"github.com/mxarte/artweek-backend/internal/submission"
	"github.com/mxarte/artweek-backend/internal/subscriber"
	"github.com/mxarte/artweek-backend/middleware"
	"github.com/mxarte/artweek-backend/utils"

	_ "github.com/mxarte/artweek-backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Setup wires every module and registers the HTTP surface. It returns
// the notification and newsletter services so main can attach the Kafka
// consumer and the digest cron to them.
func Setup(r *gin.Engine, cfg *config.Config) (*notification.Service, *newsletter.Service) {
	loc := cfg.Location()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimiter())
	api.Use(middleware.AuditMiddleware())

	// ========== Audit Log ==========
	auditRepo := auditlog.NewRepository(database.DB)
	auditSvc := auditlog.NewService(auditRepo)
	auditHandler := auditlog.NewHandler(auditSvc)

	// ========== Events ==========
	eventRepo := event.NewRepository(database.DB)
	eventSvc := event.NewService(eventRepo, auditSvc)
	eventHandler := event.NewHandler(eventSvc, loc)

	// ========== Galleries ==========
	galleryRepo := gallery.NewRepository(database.DB)
	gallerySvc := gallery.NewService(galleryRepo, auditSvc)
	galleryHandler := gallery.NewHandler(gallerySvc)

	// ========== Submissions ==========
	submissionRepo := submission.NewRepository(database.DB)
	submissionSvc := submission.NewService(submissionRepo, eventSvc, auditSvc)
	submissionHandler := submission.NewHandler(submissionSvc)

	// ========== Subscribers ==========
	subscriberRepo := subscriber.NewRepository(database.DB)
	subscriberSvc := subscriber.NewService(subscriberRepo, auditSvc)
	subscriberHandler := subscriber.NewHandler(subscriberSvc)

	// ========== Notifications ==========
	mailer := utils.NewEmailSender(cfg)
	itineraryRepo := itinerary.NewRepository(database.DB)
	notificationRepo := notification.NewRepository(database.DB)
	publisher := notification.NewPublisher(cfg)
	notificationSvc := notification.NewService(
		notificationRepo, mailer, eventSvc,
		subscriberSvc, itineraryRepo,
		publisher, cfg.BaseURL, cfg.OperatorEmail, loc,
	)
	notificationHandler := notification.NewHandler(notificationSvc)

	// ========== Itineraries ==========
	itinerarySvc := itinerary.NewService(itineraryRepo, eventSvc, subscriberSvc, notificationSvc)
	itineraryHandler := itinerary.NewHandler(itinerarySvc, cfg.BaseURL)

	// ========== Newsletter ==========
	newsletterSvc := newsletter.NewService(eventSvc, subscriberSvc, mailer, notificationSvc, auditSvc, loc)
	newsletterHandler := newsletter.NewHandler(newsletterSvc)

	// ========== Reports ==========
	reportsHandler := reports.NewHandler(reports.NewExporter(), eventSvc, subscriberSvc, auditSvc)

	// ========== Admin ==========
	adminHandler := admin.NewHandler(cfg, eventRepo, submissionSvc, subscriberSvc, itinerarySvc, auditSvc)

	// ---------- Public surface ----------
	api.GET("/events", eventHandler.ListEvents)
	api.GET("/events/featured", eventHandler.GetFeatured)
	api.GET("/events/today", eventHandler.GetToday)
	api.GET("/events/:slug", eventHandler.GetBySlug)

	api.GET("/galleries", galleryHandler.ListGalleries)
	api.GET("/galleries/:slug", galleryHandler.GetBySlug)

	api.POST("/submissions", submissionHandler.Submit)

	api.POST("/newsletter/subscribe", subscriberHandler.Subscribe)
	api.POST("/newsletter/unsubscribe", subscriberHandler.Unsubscribe)

	api.POST("/itineraries", itineraryHandler.Save)
	api.GET("/itineraries/:slug", itineraryHandler.GetBySlug)
	api.GET("/itineraries/:slug/copy", itineraryHandler.CopyPreview)
	api.POST("/itineraries/:slug/copy", itineraryHandler.Copy)

	api.GET("/my-itinerary", itineraryHandler.GetMine)
	api.POST("/my-itinerary/events", itineraryHandler.AddToMine)
	api.DELETE("/my-itinerary/events/:id", itineraryHandler.RemoveFromMine)
	api.DELETE("/my-itinerary", itineraryHandler.ClearMine)

	api.POST("/admin/login", adminHandler.Login)

	// ---------- Admin surface ----------
	adm := api.Group("/admin")
	adm.Use(middleware.AdminAuth(cfg))
	{
		adm.GET("/dashboard", adminHandler.Dashboard)

		adm.GET("/events", eventHandler.ListAll)
		adm.POST("/events", eventHandler.CreateEvent)
		adm.PUT("/events/:id", eventHandler.UpdateEvent)
		adm.PATCH("/events/:id/dates", eventHandler.ShiftDates)
		adm.PATCH("/events/:id/featured", eventHandler.ToggleFeatured)
		adm.DELETE("/events/:id", eventHandler.DeleteEvent)

		adm.GET("/galleries", galleryHandler.ListAll)
		adm.POST("/galleries", galleryHandler.CreateGallery)
		adm.PUT("/galleries/:id", galleryHandler.UpdateGallery)
		adm.DELETE("/galleries/:id", galleryHandler.DeleteGallery)

		adm.GET("/submissions", submissionHandler.List)
		adm.PATCH("/submissions/:id", submissionHandler.Review)

		adm.GET("/subscribers", subscriberHandler.List)

		adm.POST("/newsletter/campaign", newsletterHandler.SendCampaign)
		adm.POST("/newsletter/digest", newsletterHandler.TriggerDigest)

		adm.GET("/notifications", notificationHandler.List)
		adm.GET("/audit-logs", auditHandler.GetAuditLogs)

		adm.GET("/reports/subscribers", reportsHandler.ExportSubscribers)
		adm.GET("/reports/events", reportsHandler.ExportEvents)
	}

	return notificationSvc, newsletterSvc
}
