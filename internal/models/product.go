package models

import "strings"

// ExternalIDPrefix namespaces products synthesized from the external book
// search so they can never collide with seeded catalog identifiers.
const ExternalIDPrefix = "google-"

// Product is a catalog book. Seeded rows carry small numeric string ids;
// externally sourced results are prefixed and never persisted.
type Product struct {
	ID          string  `gorm:"primaryKey;size:64" json:"id"`
	Name        string  `gorm:"size:255" json:"name"`
	Price       float64 `json:"price"`
	Description string  `gorm:"type:text" json:"description"`
	Category    string  `gorm:"size:100" json:"category"`
	Image       string  `gorm:"size:512" json:"image"`
	Author      string  `gorm:"size:255" json:"author"`
	Pages       int     `json:"pages"`
	External    bool    `gorm:"-" json:"external,omitempty"`
}

// IsExternalProduct reports whether a product id belongs to the external,
// non-persisted catalog.
func IsExternalProduct(id string) bool {
	return strings.HasPrefix(id, ExternalIDPrefix)
}
