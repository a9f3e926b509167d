package gallery

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

// GET /galleries?neighborhood=
func (h *Handler) ListGalleries(c *gin.Context) {
	galleries, err := h.Service.ListApproved(c.Request.Context(), c.Query("neighborhood"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list galleries"})
		return
	}
	c.JSON(http.StatusOK, galleries)
}

// GET /galleries/:slug
func (h *Handler) GetBySlug(c *gin.Context) {
	g, err := h.Service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "gallery not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch gallery"})
		return
	}
	c.JSON(http.StatusOK, g)
}

// GET /admin/galleries
func (h *Handler) ListAll(c *gin.Context) {
	galleries, err := h.Service.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list galleries"})
		return
	}
	c.JSON(http.StatusOK, galleries)
}

// POST /admin/galleries
func (h *Handler) CreateGallery(c *gin.Context) {
	var req UpsertGalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	g, err := h.Service.Create(c.Request.Context(), &req, middleware.GetIPFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create gallery: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, g)
}

// PUT /admin/galleries/:id
func (h *Handler) UpdateGallery(c *gin.Context) {
	var req UpsertGalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	g, err := h.Service.Update(c.Request.Context(), c.Param("id"), &req, middleware.GetIPFromContext(c))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "gallery not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update gallery: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, g)
}

// DELETE /admin/galleries/:id
func (h *Handler) DeleteGallery(c *gin.Context) {
	err := h.Service.Delete(c.Request.Context(), c.Param("id"), middleware.GetIPFromContext(c))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "gallery not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete gallery: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "gallery deleted"})
}
