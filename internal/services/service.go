package services

import (
	"context"

	"github.com/giftflow/giftflow-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventService defines the interface for event-related operations
type EventService interface {
	// CreateEvent persists a new event and assigns it a join code
	CreateEvent(ctx context.Context, event *models.Event) error

	// GetEventByID retrieves an event by its ID
	GetEventByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error)

	// ListEvents retrieves events, most recent first, bounded by limit
	ListEvents(ctx context.Context, limit int64) ([]*models.Event, error)
}

// ParticipantService defines the interface for participant-related operations
type ParticipantService interface {
	// RegisterParticipant adds a participant to an existing event
	RegisterParticipant(ctx context.Context, participant *models.Participant) error

	// GetParticipantByID retrieves a participant by its ID
	GetParticipantByID(ctx context.Context, id primitive.ObjectID) (*models.Participant, error)

	// ListParticipants retrieves the participants of an event
	ListParticipants(ctx context.Context, eventID primitive.ObjectID) ([]*models.Participant, error)

	// SyncWishlist replaces a participant's wishlist
	SyncWishlist(ctx context.Context, id primitive.ObjectID, items []models.WishlistItem) error

	// UpdateGiftStatus overwrites a participant's gift status
	UpdateGiftStatus(ctx context.Context, id primitive.ObjectID, status *models.GiftStatus) error
}

// DrawService defines the interface for draw-related operations
type DrawService interface {
	// RunDraw computes and persists a fresh giver/receiver assignment for
	// the event's participants
	RunDraw(ctx context.Context, eventID primitive.ObjectID) (*models.Match, error)

	// GetLatestMatch retrieves the most recent draw result for an event
	GetLatestMatch(ctx context.Context, eventID primitive.ObjectID) (*models.Match, error)
}
