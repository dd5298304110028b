package navigation

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	manager *Manager
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{manager: manager}
}

// --------------------------------------------------
// Create a navigation session
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	id, state := h.manager.Create()
	c.JSON(http.StatusCreated, gin.H{
		"session_id": id,
		"state":      state,
	})
}

// --------------------------------------------------
// Read current state
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	m, ok := h.manager.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": m.State()})
}

// --------------------------------------------------
// Manual navigation
// --------------------------------------------------
func (h *Handler) Next(c *gin.Context) {
	m, ok := h.manager.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": m.Next()})
}

func (h *Handler) Previous(c *gin.Context) {
	m, ok := h.manager.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": m.Previous()})
}

func (h *Handler) GoLive(c *gin.Context) {
	m, ok := h.manager.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": m.GoLive()})
}

// --------------------------------------------------
// Jump to a calendar date
// --------------------------------------------------
func (h *Handler) Jump(c *gin.Context) {
	m, ok := h.manager.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session"})
		return
	}

	var req struct {
		Date string `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}

	target, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"state": m.JumpTo(target)})
}
