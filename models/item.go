package models

import "time"

// MarketplaceItem is a listing offered for sale by a registered user.
//
// SellerID always references an existing User and is set from the
// authenticated caller at creation time; it is never taken from client input.
// Only the owning user may delete the item.
type MarketplaceItem struct {
	ID       int64  `json:"id"`
	SellerID int64  `json:"seller_id"`
	Title    string `json:"title"`

	// Description and ImageURL are optional; nil maps to SQL NULL.
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    *string `json:"image_url"`

	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the MarketplaceItem model.
func (m MarketplaceItem) TableName() string {
	return "marketplace_items"
}

// ItemListing is a marketplace item joined with its seller's display name,
// as returned by the listing endpoint.
type ItemListing struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Seller      string  `json:"seller"`
	SellerID    int64   `json:"seller_id"`
}
