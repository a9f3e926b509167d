package submission

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mxarte/artweek-backend/middleware"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// ===========================
// 📝 Submit Event - POST /submissions
func (h *Handler) Submit(c *gin.Context) {
	var req CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	ip := middleware.GetIPFromContext(c)
	sub, err := h.Service.Submit(c.Request.Context(), &req, ip)
	if err != nil {
		writeSubmissionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "submission received, pending review",
		"id":      sub.ID,
	})
}

// ===========================
// 📄 List Submissions - GET /admin/submissions?status=
func (h *Handler) List(c *gin.Context) {
	status := c.Query("status")
	if status != "" && status != StatusPending && status != StatusApproved && status != StatusRejected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
		return
	}

	subs, err := h.Service.List(c.Request.Context(), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list submissions"})
		return
	}
	c.JSON(http.StatusOK, subs)
}

// ===========================
// ✅ Review Submission - PATCH /admin/submissions/:id
func (h *Handler) Review(c *gin.Context) {
	var req ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	ip := middleware.GetIPFromContext(c)
	sub, err := h.Service.Review(c.Request.Context(), c.Param("id"), &req, ip)
	if err != nil {
		writeSubmissionError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

func writeSubmissionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "submission not found"})
	case errors.Is(err, ErrInvalidCategory),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrEndBeforeStart),
		errors.Is(err, ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrNotPending):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed: " + err.Error()})
	}
}
