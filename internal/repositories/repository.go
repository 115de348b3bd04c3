package repositories

import (
	"context"

	"github.com/giftflow/giftflow-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventRepository defines the interface for event data operations
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error)
	FindAll(ctx context.Context, limit int64) ([]*models.Event, error)
}

// ParticipantRepository defines the interface for participant data
// operations. Update methods return mongo.ErrNoDocuments when the id
// matches nothing.
type ParticipantRepository interface {
	Create(ctx context.Context, participant *models.Participant) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Participant, error)
	FindByEventID(ctx context.Context, eventID primitive.ObjectID, limit int64) ([]*models.Participant, error)
	CountByEventID(ctx context.Context, eventID primitive.ObjectID) (int64, error)
	ReplaceWishlist(ctx context.Context, id primitive.ObjectID, items []models.WishlistItem) error
	SetMatch(ctx context.Context, id primitive.ObjectID, receiverID string) error
	SetGiftStatus(ctx context.Context, id primitive.ObjectID, status *models.GiftStatus) error
}

// MatchRepository defines the interface for draw result operations
type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	FindLatestByEventID(ctx context.Context, eventID primitive.ObjectID) (*models.Match, error)
}
