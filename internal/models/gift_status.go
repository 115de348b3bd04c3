package models

import "time"

// GiftStatusValue represents the fulfillment state of a gift
type GiftStatusValue string

const (
	GiftStatusRequested GiftStatusValue = "requested"
	GiftStatusPurchased GiftStatusValue = "purchased"
	GiftStatusShipped   GiftStatusValue = "shipped"
	GiftStatusDelivered GiftStatusValue = "delivered"
)

// GiftStatusValues lists every accepted status, in fulfillment order. The
// values are plain strings so they can feed validation rules directly.
func GiftStatusValues() []interface{} {
	return []interface{}{
		string(GiftStatusRequested),
		string(GiftStatusPurchased),
		string(GiftStatusShipped),
		string(GiftStatusDelivered),
	}
}

// GiftStatus records where a participant's gift is in its lifecycle. It is
// embedded in the participant document and overwritten on every update.
type GiftStatus struct {
	Status         GiftStatusValue `bson:"status" json:"status"`
	TrackingNumber string          `bson:"trackingNumber,omitempty" json:"tracking_number,omitempty"`
	Notes          string          `bson:"notes,omitempty" json:"notes,omitempty"`
	UpdatedAt      time.Time       `bson:"updatedAt" json:"updated_at"`
}
