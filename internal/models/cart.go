package models

import (
	"fmt"
	"time"
)

// ItemType identifies which catalog a cart line item references
type ItemType string

const (
	ItemTypeArtwork ItemType = "artwork"
	ItemTypeEvent   ItemType = "event"
)

// IsValid checks whether the item type is a known catalog type
func (t ItemType) IsValid() bool {
	return t == ItemTypeArtwork || t == ItemTypeEvent
}

// CartLineItem is the persisted cart row. Display fields are intentionally
// absent; they are joined from the catalog at read time so price changes
// propagate to open carts.
type CartLineItem struct {
	ID          int       `json:"id" db:"id"`
	SessionID   string    `json:"session_id" db:"session_id"`
	ItemType    ItemType  `json:"item_type" db:"item_type"`
	ReferenceID int       `json:"reference_id" db:"reference_id"`
	Quantity    int       `json:"quantity" db:"quantity"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// ResolvedCartItem is a line item joined against the catalog. UnitPrice is
// read fresh on every retrieval and never cached on the row.
type ResolvedCartItem struct {
	CartLineItem
	Title     string `json:"title"`
	UnitPrice int    `json:"unit_price"` // in cents
	ImageURL  string `json:"image_url"`
	Label     string `json:"label"` // artist name or event date
}

// Subtotal returns the line total in cents
func (i *ResolvedCartItem) Subtotal() int {
	return i.UnitPrice * i.Quantity
}

// ItemCount returns the total quantity across all line items
func ItemCount(items []*ResolvedCartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

// DominantType returns the item type carrying the largest share of quantity
// in the cart. Ties (and empty carts) resolve to artwork, the storefront's
// primary flow. Discount codes are matched against this type.
func DominantType(items []*ResolvedCartItem) ItemType {
	artworks, events := 0, 0
	for _, item := range items {
		switch item.ItemType {
		case ItemTypeArtwork:
			artworks += item.Quantity
		case ItemTypeEvent:
			events += item.Quantity
		}
	}
	if events > artworks {
		return ItemTypeEvent
	}
	return ItemTypeArtwork
}

// FormatCents renders an amount in cents as a dollar string for user-facing
// messages. All arithmetic stays in integer cents; this is presentation only.
func FormatCents(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
