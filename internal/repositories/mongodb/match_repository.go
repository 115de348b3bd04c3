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

// MatchRepository implements the repositories.MatchRepository interface
type MatchRepository struct {
	collection *mongo.Collection
}

// NewMatchRepository creates a new MatchRepository
func NewMatchRepository(db *mongo.Database) repositories.MatchRepository {
	return &MatchRepository{
		collection: db.Collection("matches"),
	}
}

// Create creates a new match document
func (r *MatchRepository) Create(ctx context.Context, match *models.Match) error {
	match.CreatedAt = time.Now()
	match.UpdatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, match)
	if err != nil {
		return err
	}
	match.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindLatestByEventID finds the most recent match for an event
func (r *MatchRepository) FindLatestByEventID(ctx context.Context, eventID primitive.ObjectID) (*models.Match, error) {
	opts := options.FindOne().SetSort(bson.M{"_id": -1})
	var match models.Match
	err := r.collection.FindOne(ctx, bson.M{"eventId": eventID}, opts).Decode(&match)
	if err != nil {
		return nil, err // Returns mongo.ErrNoDocuments if no draw has run
	}
	return &match, nil
}
