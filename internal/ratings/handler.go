package ratings

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Submit a rating
// --------------------------------------------------
func (h *Handler) Add(c *gin.Context) {
	var req struct {
		Item   string `json:"item"`
		Rating int    `json:"rating"`
		Mess   string `json:"mess"`
		Day    string `json:"day"`
		Meal   string `json:"meal"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	rec, err := h.service.Add(c.Request.Context(), req.Item, req.Rating, req.Mess, req.Day, req.Meal)
	if err != nil {
		if errors.Is(err, ErrMissingContext) || errors.Is(err, ErrEmptyItem) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"rating": rec})
}

// --------------------------------------------------
// Read one rating
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	rec, err := h.service.Get(
		c.Request.Context(),
		c.Query("item"),
		c.Query("mess"),
		c.Query("day"),
		c.Query("meal"),
	)
	if err != nil {
		if errors.Is(err, ErrMissingContext) || errors.Is(err, ErrEmptyItem) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no rating yet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rating": rec})
}

// --------------------------------------------------
// Community statistics
// --------------------------------------------------
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
