package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Participant belongs to exactly one event. MatchID is empty until a draw
// assigns the participant someone to gift; it holds the hex ObjectID of
// the receiving participant.
type Participant struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	EventID    primitive.ObjectID `bson:"eventId" json:"event_id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Wishlist   []WishlistItem     `bson:"wishlist" json:"wishlist"`
	MatchID    string             `bson:"matchId,omitempty" json:"match_id,omitempty"`
	GiftStatus *GiftStatus        `bson:"giftStatus,omitempty" json:"gift_status,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updated_at"`
}
