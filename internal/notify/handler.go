package notify

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
// Subscribe a device
// --------------------------------------------------
func (h *Handler) Subscribe(c *gin.Context) {
	var req struct {
		Platform    string       `json:"platform"`
		Token       string       `json:"token"`
		Preferences *Preferences `json:"preferences"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	prefs := DefaultPreferences()
	if req.Preferences != nil {
		prefs = *req.Preferences
	}

	sub, err := h.service.Subscribe(c.Request.Context(), req.Platform, req.Token, prefs)
	if err != nil {
		if errors.Is(err, ErrMissingToken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":         true,
		"subscription_id": sub.ID,
	})
}

// --------------------------------------------------
// Unsubscribe a device
// --------------------------------------------------
func (h *Handler) Unsubscribe(c *gin.Context) {
	var req struct {
		Endpoint string `json:"endpoint"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Endpoint == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endpoint is required"})
		return
	}

	if err := h.service.Unsubscribe(c.Request.Context(), req.Endpoint); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --------------------------------------------------
// Admin: send a test notification to everyone
// --------------------------------------------------
func (h *Handler) Test(c *gin.Context) {
	msg := Message{
		Title: "Test Notification",
		Body:  "This is a test push from the MessMate server.",
		Tag:   "test-notification",
	}

	sent, err := h.service.Broadcast(c.Request.Context(), msg, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"sent":    sent,
	})
}
