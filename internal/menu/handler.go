package menu

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/prasannardyy/Messmate/internal/schedule"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// List messes
// --------------------------------------------------
func (h *Handler) Messes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"messes": h.service.Messes()})
}

// --------------------------------------------------
// Full day menu for a mess
// --------------------------------------------------
func (h *Handler) Day(c *gin.Context) {
	mess := c.Param("mess")
	day := c.Param("day")

	c.JSON(http.StatusOK, gin.H{
		"mess":  mess,
		"day":   day,
		"meals": h.service.Day(mess, day),
	})
}

// --------------------------------------------------
// Current (or next) meal for a mess
// --------------------------------------------------
func (h *Handler) Current(c *gin.Context) {
	current, err := h.service.Current(c.Param("mess"), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, current)
}

// --------------------------------------------------
// Meal schedule for a date (defaults to today)
// --------------------------------------------------
func (h *Handler) Schedule(c *gin.Context) {
	day := time.Now()
	if q := c.Query("date"); q != "" {
		parsed, err := time.Parse("2006-01-02", q)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	c.JSON(http.StatusOK, gin.H{
		"day":     schedule.DayKey(day),
		"windows": schedule.ForDate(day),
	})
}

// --------------------------------------------------
// Admin: publish a new menu document
// --------------------------------------------------

// Uploader is the slice of the storage client the admin handler needs.
type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader) (string, error)
}

type AdminHandler struct {
	service  *Service
	uploader Uploader
	key      string
}

func NewAdminHandler(service *Service, uploader Uploader, key string) *AdminHandler {
	return &AdminHandler{service: service, uploader: uploader, key: key}
}

func (h *AdminHandler) Publish(c *gin.Context) {
	if h.uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "menu storage not configured"})
		return
	}

	file, header, err := c.Request.FormFile("menu_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu_file is required"})
		return
	}
	defer file.Close()

	if err := ValidateFileExtension(header.Filename); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}
	if err := ValidateDocument(data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url, err := h.uploader.Upload(c.Request.Context(), h.key, bytes.NewReader(data))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Reload(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "published but reload failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "menu published",
		"url":     url,
	})
}
