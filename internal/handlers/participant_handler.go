package handlers

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/giftflow/giftflow-backend/internal/models"
	"github.com/giftflow/giftflow-backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParticipantHandler handles participant-related HTTP requests
type ParticipantHandler struct {
	participantService services.ParticipantService
}

// NewParticipantHandler creates a new ParticipantHandler
func NewParticipantHandler(participantService services.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{
		participantService: participantService,
	}
}

// WishlistItemRequest is one wishlist entry in a request body
type WishlistItemRequest struct {
	Title        string   `json:"title" binding:"required"`
	URL          string   `json:"url"`
	AffiliateURL string   `json:"affiliate_url"`
	Price        *float64 `json:"price"`
	Notes        string   `json:"notes"`
}

// Validate enforces the wishlist item constraints
func (r *WishlistItemRequest) Validate() error {
	return validation.ValidateStruct(
		r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.URL, is.URL),
		validation.Field(&r.AffiliateURL, is.URL),
		validation.Field(&r.Price, validation.Min(0.0)),
	)
}

func (r *WishlistItemRequest) toModel() models.WishlistItem {
	return models.WishlistItem{
		Title:        r.Title,
		URL:          r.URL,
		AffiliateURL: r.AffiliateURL,
		Price:        r.Price,
		Notes:        r.Notes,
	}
}

// validateWishlistItems rejects the whole list on the first offending item
func validateWishlistItems(items []WishlistItemRequest) error {
	for i := range items {
		if err := items[i].Validate(); err != nil {
			return validation.Errors{"items": err}
		}
	}
	return nil
}

// CreateParticipantRequest is the body for POST /events/:id/participants
type CreateParticipantRequest struct {
	Name     string                `json:"name" binding:"required"`
	Email    string                `json:"email" binding:"required"`
	Wishlist []WishlistItemRequest `json:"wishlist"`
}

// Validate enforces the participant field constraints
func (r *CreateParticipantRequest) Validate() error {
	err := validation.ValidateStruct(
		r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&r.Email, validation.Required, is.Email),
	)
	if err != nil {
		return err
	}
	return validateWishlistItems(r.Wishlist)
}

// CreateParticipant handles POST /events/:id/participants
func (h *ParticipantHandler) CreateParticipant(c *gin.Context) {
	eventID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var request CreateParticipantRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := request.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid participant", "details": err})
		return
	}

	wishlist := make([]models.WishlistItem, 0, len(request.Wishlist))
	for i := range request.Wishlist {
		wishlist = append(wishlist, request.Wishlist[i].toModel())
	}
	participant := &models.Participant{
		EventID:  eventID,
		Name:     request.Name,
		Email:    request.Email,
		Wishlist: wishlist,
	}
	if err := h.participantService.RegisterParticipant(c.Request.Context(), participant); err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register participant: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, participant)
}

// GetParticipantByID handles GET /participants/:id
func (h *ParticipantHandler) GetParticipantByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	participant, err := h.participantService.GetParticipantByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrParticipantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Participant not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve participant: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, participant)
}

// ListParticipants handles GET /events/:id/participants
func (h *ParticipantHandler) ListParticipants(c *gin.Context) {
	eventID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	participants, err := h.participantService.ListParticipants(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list participants: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, participants)
}

// SyncWishlistRequest is the body for POST /participants/:id/wishlist.
// An empty items list is valid and clears the wishlist.
type SyncWishlistRequest struct {
	Items []WishlistItemRequest `json:"items"`
}

// Validate enforces the wishlist constraints
func (r *SyncWishlistRequest) Validate() error {
	return validateWishlistItems(r.Items)
}

// SyncWishlist handles POST /participants/:id/wishlist
func (h *ParticipantHandler) SyncWishlist(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var request SyncWishlistRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := request.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid wishlist", "details": err})
		return
	}

	items := make([]models.WishlistItem, 0, len(request.Items))
	for i := range request.Items {
		items = append(items, request.Items[i].toModel())
	}
	if err := h.participantService.SyncWishlist(c.Request.Context(), id, items); err != nil {
		if errors.Is(err, services.ErrParticipantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Participant not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "items": len(items)})
}

// UpdateGiftStatusRequest is the body for POST /participants/:id/gift-status
type UpdateGiftStatusRequest struct {
	Status         string `json:"status" binding:"required"`
	TrackingNumber string `json:"tracking_number"`
	Notes          string `json:"notes"`
}

// Validate enforces the closed status set
func (r *UpdateGiftStatusRequest) Validate() error {
	return validation.ValidateStruct(
		r,
		validation.Field(&r.Status, validation.Required, validation.In(models.GiftStatusValues()...)),
	)
}

// UpdateGiftStatus handles POST /participants/:id/gift-status
func (h *ParticipantHandler) UpdateGiftStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var request UpdateGiftStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := request.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid gift status", "details": err})
		return
	}

	status := &models.GiftStatus{
		Status:         models.GiftStatusValue(request.Status),
		TrackingNumber: request.TrackingNumber,
		Notes:          request.Notes,
	}
	if err := h.participantService.UpdateGiftStatus(c.Request.Context(), id, status); err != nil {
		if errors.Is(err, services.ErrParticipantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Participant not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update gift status: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
