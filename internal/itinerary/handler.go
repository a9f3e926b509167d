package itinerary

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mxarte/artweek-backend/internal/localset"
)

type Handler struct {
	Service *Service
	BaseURL string
}

func NewHandler(s *Service, baseURL string) *Handler {
	return &Handler{Service: s, BaseURL: baseURL}
}

func (h *Handler) shareURL(slug string) string {
	return h.BaseURL + "/itinerary/" + slug
}

// ===========================
// 💾 Save Itinerary - POST /itineraries
func (h *Handler) Save(c *gin.Context) {
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	it, err := h.Service.Save(c.Request.Context(), &req)
	if err != nil {
		writeItineraryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"slug":      it.Slug,
		"name":      it.Name,
		"share_url": h.shareURL(it.Slug),
	})
}

// ===========================
// 🔍 Get Itinerary - GET /itineraries/:slug
func (h *Handler) GetBySlug(c *gin.Context) {
	it, events, err := h.Service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeItineraryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"itinerary": it,
		"events":    events,
		"share_url": h.shareURL(it.Slug),
	})
}

// ===========================
// 📋 My Itinerary - GET /my-itinerary
// Renders the visitor's cookie-held set as event cards without
// persisting anything.
func (h *Handler) GetMine(c *gin.Context) {
	set := localset.Load(c)
	events, err := h.Service.Resolve(c.Request.Context(), set.IDs())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve events"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": set.Count(), "events": events})
}

// ===========================
// ➕ Add to My Itinerary - POST /my-itinerary/events
func (h *Handler) AddToMine(c *gin.Context) {
	var req MutateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	set := localset.Load(c)
	added := set.Add(req.EventID)
	localset.Store(c, set)

	c.JSON(http.StatusOK, gin.H{"added": added, "count": set.Count()})
}

// ===========================
// ➖ Remove from My Itinerary - DELETE /my-itinerary/events/:id
func (h *Handler) RemoveFromMine(c *gin.Context) {
	set := localset.Load(c)
	removed := set.Remove(c.Param("id"))
	localset.Store(c, set)

	c.JSON(http.StatusOK, gin.H{"removed": removed, "count": set.Count()})
}

// ===========================
// 🧹 Clear My Itinerary - DELETE /my-itinerary
func (h *Handler) ClearMine(c *gin.Context) {
	set := localset.Load(c)
	set.Clear()
	localset.Store(c, set)

	c.JSON(http.StatusOK, gin.H{"count": 0})
}

// ===========================
// 📑 Copy Preview - GET /itineraries/:slug/copy
// Reports what a copy would change without mutating the visitor's set.
func (h *Handler) CopyPreview(c *gin.Context) {
	it, err := h.Service.Peek(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeItineraryError(c, err)
		return
	}

	set := localset.Load(c)
	already, fresh := set.MergePreview(it.EventIDList())

	c.JSON(http.StatusOK, gin.H{
		"already_have": len(already),
		"would_add":    len(fresh),
	})
}

// ===========================
// 📥 Copy Itinerary - POST /itineraries/:slug/copy
// Merges a shared itinerary into the caller's local set with
// add-if-absent semantics. Copying twice changes nothing.
func (h *Handler) Copy(c *gin.Context) {
	it, err := h.Service.Peek(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeItineraryError(c, err)
		return
	}

	set := localset.Load(c)
	added := set.Merge(it.EventIDList())
	localset.Store(c, set)

	c.JSON(http.StatusOK, gin.H{
		"added": added,
		"count": set.Count(),
	})
}

func writeItineraryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "itinerary not found"})
	case errors.Is(err, ErrNoEvents),
		errors.Is(err, ErrInvalidEmail),
		errors.Is(err, ErrNameRequired),
		errors.Is(err, ErrEmojiRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed, please try again"})
	}
}
