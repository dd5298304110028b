package favorites

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
// List my favorites
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("userID")

	items, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": items})
}

// --------------------------------------------------
// Toggle a favorite
// --------------------------------------------------
func (h *Handler) Toggle(c *gin.Context) {
	userID := c.GetString("userID")

	var req struct {
		Item string `json:"item"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Item == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item is required"})
		return
	}

	favorited, err := h.service.Toggle(c.Request.Context(), userID, req.Item)
	if err != nil {
		if errors.Is(err, ErrEmptyItem) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"item":      req.Item,
		"favorited": favorited,
	})
}

// --------------------------------------------------
// Remove a favorite (and its variants)
// --------------------------------------------------
func (h *Handler) Remove(c *gin.Context) {
	userID := c.GetString("userID")

	var req struct {
		Item string `json:"item"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Item == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item is required"})
		return
	}

	if err := h.service.Remove(c.Request.Context(), userID, req.Item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed": req.Item})
}
