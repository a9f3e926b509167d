package reports

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mxarte/artweek-backend/internal/auditlog"
	"github.com/mxarte/artweek-backend/internal/event"
	"github.com/mxarte/artweek-backend/internal/subscriber"
	"github.com/mxarte/artweek-backend/middleware"
)

type Handler struct {
	Exporter    Exporter
	Events      *event.Service
	Subscribers *subscriber.Service
	AuditSvc    auditlog.Service
}

func NewHandler(exp Exporter, events *event.Service, subs *subscriber.Service, auditSvc auditlog.Service) *Handler {
	return &Handler{Exporter: exp, Events: events, Subscribers: subs, AuditSvc: auditSvc}
}

// ===========================
// 📊 Export Subscribers - GET /admin/reports/subscribers?format=csv|excel|pdf
func (h *Handler) ExportSubscribers(c *gin.Context) {
	format := c.DefaultQuery("format", FormatCSV)

	rows, err := h.Subscribers.List(c.Request.Context(), 500, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load subscribers"})
		return
	}

	data, filename, contentType, err := h.Exporter.ExportSubscribers(format, rows)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ip := middleware.GetIPFromContext(c)
	_ = h.AuditSvc.LogAction(c.Request.Context(), "admin", "REPORT_EXPORTED", map[string]interface{}{
		"report": "subscribers",
		"format": format,
		"rows":   len(rows),
	}, ip, "success")

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, data)
}

// ===========================
// 📊 Export Events - GET /admin/reports/events?format=csv|excel|pdf
func (h *Handler) ExportEvents(c *gin.Context) {
	format := c.DefaultQuery("format", FormatCSV)

	rows, err := h.Events.ListAll(c.Request.Context(), 200, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load events"})
		return
	}

	data, filename, contentType, err := h.Exporter.ExportEvents(format, rows)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ip := middleware.GetIPFromContext(c)
	_ = h.AuditSvc.LogAction(c.Request.Context(), "admin", "REPORT_EXPORTED", map[string]interface{}{
		"report": "events",
		"format": format,
		"rows":   len(rows),
	}, ip, "success")

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, data)
}
