package models

import (
	"time"

	"github.com/google/uuid"
)

// Order is a completed checkout. The primary key is the payment transaction
// id, the email of record is the authenticated account's email, and the card
// fields are masked before they ever reach the database. Rows are immutable
// once written.
type Order struct {
	ID               string    `gorm:"primaryKey;size:64" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerName     string    `gorm:"size:255" json:"customer_name"`
	CustomerLastname string    `gorm:"size:255" json:"customer_lastname"`
	CustomerEmail    string    `gorm:"size:255" json:"customer_email"`
	CustomerAddress  string    `gorm:"size:512" json:"customer_address"`
	CustomerCity     string    `gorm:"size:255" json:"customer_city"`
	CustomerZip      string    `gorm:"size:32" json:"customer_zip"`
	CardNumber       string    `gorm:"size:32" json:"card_number"`
	CardHolder       string    `gorm:"size:255" json:"card_holder"`
	CardExpiry       string    `gorm:"size:16" json:"card_expiry"`
	CardCVV          string    `gorm:"size:8" json:"card_cvv"`
	Total            float64   `json:"total"`
	CreatedAt        time.Time `json:"created_at"`
}

// OrderItem is one cart line of an order, written in the same transaction as
// its parent row.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   string  `gorm:"size:64;not null;index" json:"order_id"`
	ProductID string  `gorm:"size:64;not null" json:"product_id"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}
