package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/giftflow/giftflow-backend/internal/models"
	"github.com/giftflow/giftflow-backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventHandler handles event-related HTTP requests
type EventHandler struct {
	eventService services.EventService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService services.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// CreateEventRequest is the body for POST /events
type CreateEventRequest struct {
	Name           string     `json:"name" binding:"required"`
	OrganizerName  string     `json:"organizer_name" binding:"required"`
	OrganizerEmail string     `json:"organizer_email" binding:"required"`
	EventDate      *time.Time `json:"event_date"`
	BudgetMin      *float64   `json:"budget_min"`
	BudgetMax      *float64   `json:"budget_max"`
	Currency       string     `json:"currency"`
	Rules          string     `json:"rules"`
}

// Validate enforces the event field constraints. Validation is
// all-or-nothing: any violation rejects the whole request.
func (r *CreateEventRequest) Validate() error {
	err := validation.ValidateStruct(
		r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&r.OrganizerName, validation.Required, validation.Length(1, 120)),
		validation.Field(&r.OrganizerEmail, validation.Required, is.Email),
		validation.Field(&r.BudgetMin, validation.Min(0.0)),
		validation.Field(&r.BudgetMax, validation.Min(0.0)),
		validation.Field(&r.Currency, validation.Length(3, 3)),
	)
	if err != nil {
		return err
	}
	if r.BudgetMin != nil && r.BudgetMax != nil && *r.BudgetMax < *r.BudgetMin {
		return validation.Errors{"budget_max": errors.New("must be greater than or equal to budget_min")}
	}
	return nil
}

// CreateEvent handles POST /events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var request CreateEventRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := request.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event", "details": err})
		return
	}

	event := &models.Event{
		Name:           request.Name,
		OrganizerName:  request.OrganizerName,
		OrganizerEmail: request.OrganizerEmail,
		EventDate:      request.EventDate,
		BudgetMin:      request.BudgetMin,
		BudgetMax:      request.BudgetMax,
		Currency:       request.Currency,
		Rules:          request.Rules,
	}
	if err := h.eventService.CreateEvent(c.Request.Context(), event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, event)
}

// ListEvents handles GET /events
func (h *EventHandler) ListEvents(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}

	events, err := h.eventService.ListEvents(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list events: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetEventByID handles GET /events/:id
func (h *EventHandler) GetEventByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	event, err := h.eventService.GetEventByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve event: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, event)
}
