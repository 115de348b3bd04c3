package models

// WishlistItem is one desired gift on a participant's wishlist. The list
// is embedded in the participant document and replaced wholesale on sync.
type WishlistItem struct {
	Title        string   `bson:"title" json:"title"`
	URL          string   `bson:"url,omitempty" json:"url,omitempty"`
	AffiliateURL string   `bson:"affiliateUrl,omitempty" json:"affiliate_url,omitempty"`
	Price        *float64 `bson:"price,omitempty" json:"price,omitempty"`
	Notes        string   `bson:"notes,omitempty" json:"notes,omitempty"`
}
