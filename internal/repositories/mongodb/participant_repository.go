package mongodb

import (
	"context"
	"time"

	"github.com/giftflow/giftflow-backend/internal/models"
	"github.com/giftflow/giftflow-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ParticipantRepository implements the repositories.ParticipantRepository interface
type ParticipantRepository struct {
	collection *mongo.Collection
}

// NewParticipantRepository creates a new ParticipantRepository
func NewParticipantRepository(db *mongo.Database) repositories.ParticipantRepository {
	return &ParticipantRepository{
		collection: db.Collection("participants"),
	}
}

// Create creates a new participant
func (r *ParticipantRepository) Create(ctx context.Context, participant *models.Participant) error {
	participant.CreatedAt = time.Now()
	participant.UpdatedAt = time.Now()
	if participant.Wishlist == nil {
		participant.Wishlist = []models.WishlistItem{}
	}
	res, err := r.collection.InsertOne(ctx, participant)
	if err != nil {
		return err
	}
	participant.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a participant by ID
func (r *ParticipantRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Participant, error) {
	var participant models.Participant
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&participant)
	if err != nil {
		return nil, err // Returns mongo.ErrNoDocuments if not found
	}
	return &participant, nil
}

// FindByEventID finds the participants of an event in registration order
func (r *ParticipantRepository) FindByEventID(ctx context.Context, eventID primitive.ObjectID, limit int64) ([]*models.Participant, error) {
	opts := options.Find().SetSort(bson.M{"_id": 1}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{"eventId": eventID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var participants []*models.Participant
	if err := cursor.All(ctx, &participants); err != nil {
		return nil, err
	}
	if participants == nil {
		participants = []*models.Participant{}
	}
	return participants, nil
}

// CountByEventID counts the participants registered for an event
func (r *ParticipantRepository) CountByEventID(ctx context.Context, eventID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"eventId": eventID})
}

// ReplaceWishlist replaces the participant's whole wishlist
func (r *ParticipantRepository) ReplaceWishlist(ctx context.Context, id primitive.ObjectID, items []models.WishlistItem) error {
	if items == nil {
		items = []models.WishlistItem{}
	}
	return r.setFields(ctx, id, bson.M{"wishlist": items})
}

// SetMatch records the participant the given participant should gift to
func (r *ParticipantRepository) SetMatch(ctx context.Context, id primitive.ObjectID, receiverID string) error {
	return r.setFields(ctx, id, bson.M{"matchId": receiverID})
}

// SetGiftStatus overwrites the participant's gift status
func (r *ParticipantRepository) SetGiftStatus(ctx context.Context, id primitive.ObjectID, status *models.GiftStatus) error {
	return r.setFields(ctx, id, bson.M{"giftStatus": status})
}

// setFields applies a partial $set update and stamps updatedAt. Returns
// mongo.ErrNoDocuments when no participant matches the id.
func (r *ParticipantRepository) setFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updatedAt"] = time.Now()
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
