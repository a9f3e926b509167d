package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/mxarte/artweek-backend/config"
	"github.com/mxarte/artweek-backend/internal/auditlog"
	"github.com/mxarte/artweek-backend/internal/event"
	"github.com/mxarte/artweek-backend/internal/itinerary"
	"github.com/mxarte/artweek-backend/internal/submission"
	"github.com/mxarte/artweek-backend/internal/subscriber"
	"github.com/mxarte/artweek-backend/middleware"
)

type Handler struct {
	Cfg         *config.Config
	Events      *event.Repository
	Submissions *submission.Service
	Subscribers *subscriber.Service
	Itineraries *itinerary.Service
	AuditSvc    auditlog.Service
}

func NewHandler(cfg *config.Config, events *event.Repository, subs *submission.Service, newsletterSubs *subscriber.Service, itins *itinerary.Service, auditSvc auditlog.Service) *Handler {
	return &Handler{
		Cfg:         cfg,
		Events:      events,
		Submissions: subs,
		Subscribers: newsletterSubs,
		Itineraries: itins,
		AuditSvc:    auditSvc,
	}
}

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

// ===========================
// 🔐 Login - POST /admin/login
// Exchanges the operator password for a short-lived bearer token. The
// bcrypt hash wins when both it and the plain password are configured.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	ip := middleware.GetIPFromContext(c)

	if !h.passwordMatches(req.Password) {
		_ = h.AuditSvc.LogAction(c.Request.Context(), "system", "ADMIN_LOGIN_FAILED", map[string]interface{}{}, ip, "failure")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid password"})
		return
	}

	token, err := middleware.GenerateAdminToken(h.Cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	_ = h.AuditSvc.LogAction(c.Request.Context(), "admin", "ADMIN_LOGIN", map[string]interface{}{}, ip, "success")

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) passwordMatches(password string) bool {
	if h.Cfg.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(h.Cfg.AdminPasswordHash), []byte(password)) == nil
	}
	return h.Cfg.AdminPassword != "" && password == h.Cfg.AdminPassword
}

// ===========================
// 📈 Dashboard - GET /admin/dashboard
func (h *Handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	totalEvents, err := h.Events.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dashboard"})
		return
	}
	approvedEvents, err := h.Events.CountApproved(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dashboard"})
		return
	}
	pendingSubmissions, err := h.Submissions.CountPending(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dashboard"})
		return
	}
	subscribers, err := h.Subscribers.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dashboard"})
		return
	}
	itineraries, err := h.Itineraries.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events":              totalEvents,
		"approved_events":     approvedEvents,
		"pending_submissions": pendingSubmissions,
		"subscribers":         subscribers,
		"itineraries":         itineraries,
	})
}
