package handlers

import (
	"errors"
	"net/http"

	"github.com/giftflow/giftflow-backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DrawHandler handles draw-related HTTP requests
type DrawHandler struct {
	drawService services.DrawService
}

// NewDrawHandler creates a new DrawHandler
func NewDrawHandler(drawService services.DrawService) *DrawHandler {
	return &DrawHandler{
		drawService: drawService,
	}
}

// RunDraw handles POST /events/:id/draw
func (h *DrawHandler) RunDraw(c *gin.Context) {
	eventID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	match, err := h.drawService.RunDraw(c.Request.Context(), eventID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		case errors.Is(err, services.ErrInsufficientParticipants):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Need at least two participants to draw"})
		case errors.Is(err, services.ErrDrawComputationFailed):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not compute non-self assignments"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to run draw: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, match)
}

// GetLatestMatch handles GET /events/:id/match
func (h *DrawHandler) GetLatestMatch(c *gin.Context) {
	eventID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	match, err := h.drawService.GetLatestMatch(c.Request.Context(), eventID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		case errors.Is(err, services.ErrMatchNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No draw has been run for this event"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve match: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, match)
}
