package newsletter

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

type campaignRequest struct {
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

// ===========================
// 📣 Send Campaign - POST /admin/newsletter/campaign
func (h *Handler) SendCampaign(c *gin.Context) {
	var req campaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	ip := middleware.GetIPFromContext(c)
	count, err := h.Service.SendCampaign(c.Request.Context(), req.Subject, req.Body, ip)
	if err != nil {
		if errors.Is(err, ErrSubjectRequired) || errors.Is(err, ErrBodyRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send campaign"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"message": "campaign dispatching", "recipients": count})
}

// ===========================
// 🌅 Trigger Digest - POST /admin/newsletter/digest
func (h *Handler) TriggerDigest(c *gin.Context) {
	count, err := h.Service.RunDigest(c.Request.Context(), true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send digest"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "digest sent", "recipients": count})
}
