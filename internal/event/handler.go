package event

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mxarte/artweek-backend/middleware"
)

type Handler struct {
	Service *Service
	Loc     *time.Location
}

func NewHandler(s *Service, loc *time.Location) *Handler {
	return &Handler{Service: s, Loc: loc}
}

// ===========================
// 📄 List Events - GET /events?category=&neighborhood=&search=&limit=&offset=
func (h *Handler) ListEvents(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	category := c.Query("category")
	if category != "" && !ValidCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
		return
	}

	events, err := h.Service.ListApproved(c.Request.Context(), ListFilter{
		Category:     category,
		Neighborhood: c.Query("neighborhood"),
		Search:       c.Query("search"),
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list events"})
		return
	}

	c.JSON(http.StatusOK, events)
}

// ===========================
// ⭐ Featured Events - GET /events/featured
func (h *Handler) GetFeatured(c *gin.Context) {
	events, err := h.Service.ListFeatured(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch featured events"})
		return
	}
	c.JSON(http.StatusOK, events)
}

// ===========================
// 📆 Today's Events - GET /events/today
func (h *Handler) GetToday(c *gin.Context) {
	events, err := h.Service.ListToday(c.Request.Context(), h.Loc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch today's events"})
		return
	}
	c.JSON(http.StatusOK, events)
}

// ===========================
// 🔍 Get Event - GET /events/:slug
func (h *Handler) GetBySlug(c *gin.Context) {
	e, err := h.Service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch event"})
		return
	}
	c.JSON(http.StatusOK, e)
}

// ===========================
// 📄 Admin listing - GET /admin/events
func (h *Handler) ListAll(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	events, err := h.Service.ListAll(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list events"})
		return
	}
	c.JSON(http.StatusOK, events)
}

// ===========================
// 🎯 Create Event - POST /admin/events
func (h *Handler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	ip := middleware.GetIPFromContext(c)
	e, err := h.Service.Create(c.Request.Context(), &req, ip)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, e)
}

// ===========================
// 🛠 Update Event - PUT /admin/events/:id
func (h *Handler) UpdateEvent(c *gin.Context) {
	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	ip := middleware.GetIPFromContext(c)
	e, err := h.Service.Update(c.Request.Context(), c.Param("id"), &req, ip)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, e)
}

// ===========================
// 🗓 Shift Dates - PATCH /admin/events/:id/dates
func (h *Handler) ShiftDates(c *gin.Context) {
	var req ShiftDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	ip := middleware.GetIPFromContext(c)
	e, err := h.Service.ShiftDates(c.Request.Context(), c.Param("id"), &req, ip)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, e)
}

// ===========================
// ⭐ Toggle Featured - PATCH /admin/events/:id/featured
func (h *Handler) ToggleFeatured(c *gin.Context) {
	var req struct {
		Featured *bool `json:"featured" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	ip := middleware.GetIPFromContext(c)
	if err := h.Service.ToggleFeatured(c.Request.Context(), c.Param("id"), *req.Featured, ip); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "featured flag updated"})
}

// ===========================
// ❌ Delete Event - DELETE /admin/events/:id
func (h *Handler) DeleteEvent(c *gin.Context) {
	ip := middleware.GetIPFromContext(c)
	if err := h.Service.Delete(c.Request.Context(), c.Param("id"), ip); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}

func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
	case errors.Is(err, ErrInvalidCategory),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrEndBeforeStart):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed: " + err.Error()})
	}
}
