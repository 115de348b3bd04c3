package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event represents a single gift exchange. Events are immutable once
// created; participants, draws and gift statuses hang off them.
type Event struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name           string             `bson:"name" json:"name"`
	OrganizerName  string             `bson:"organizerName" json:"organizer_name"`
	OrganizerEmail string             `bson:"organizerEmail" json:"organizer_email"`
	EventDate      *time.Time         `bson:"eventDate,omitempty" json:"event_date,omitempty"`
	BudgetMin      *float64           `bson:"budgetMin,omitempty" json:"budget_min,omitempty"`
	BudgetMax      *float64           `bson:"budgetMax,omitempty" json:"budget_max,omitempty"`
	Currency       string             `bson:"currency" json:"currency"`
	Rules          string             `bson:"rules,omitempty" json:"rules,omitempty"`
	Code           string             `bson:"code" json:"code"`
	CreatedAt      time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updated_at"`
}
