package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pair assigns one giver to one receiver. Both sides are participant hex
// ObjectIDs from the same event.
type Pair struct {
	GiverID    string `bson:"giverId" json:"giver_id"`
	ReceiverID string `bson:"receiverId" json:"receiver_id"`
}

// Match is the persisted result of one draw run for an event. A repeat
// draw inserts a new document; the most recent one is the assignment in
// effect.
type Match struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	EventID   primitive.ObjectID `bson:"eventId" json:"event_id"`
	Pairs     []Pair             `bson:"pairs" json:"pairs"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updated_at"`
}
