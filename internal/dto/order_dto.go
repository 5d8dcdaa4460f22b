package dto

import (
	"time"

	"github.com/google/uuid"
)

// CheckoutItem is one cart line. Price is the unit price and is only
// consulted for external catalog items; local items are priced from the
// products table.
type CheckoutItem struct {
	ID    string  `json:"id"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price,omitempty"`
}

type CheckoutRequest struct {
	CustomerName     string         `json:"customer_name"`
	CustomerLastname string         `json:"customer_lastname"`
	CustomerEmail    string         `json:"customer_email"`
	CustomerAddress  string         `json:"customer_address"`
	CustomerCity     string         `json:"customer_city"`
	CustomerZip      string         `json:"customer_zip"`
	CardNumber       string         `json:"card_number"`
	CardHolder       string         `json:"card_holder"`
	CardExpiry       string         `json:"card_expiry"`
	CardCVV          string         `json:"card_cvv"`
	Items            []CheckoutItem `json:"items"`
	Total            float64        `json:"total"`
}

type CheckoutResponse struct {
	Status  string `json:"status"`
	OrderID string `json:"orderId"`
}

// OrderSummary is an order row annotated with its item count, as returned by
// the order listing.
type OrderSummary struct {
	ID               string    `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	CustomerName     string    `json:"customer_name"`
	CustomerLastname string    `json:"customer_lastname"`
	CustomerEmail    string    `json:"customer_email"`
	CustomerAddress  string    `json:"customer_address"`
	CustomerCity     string    `json:"customer_city"`
	CustomerZip      string    `json:"customer_zip"`
	CardNumber       string    `json:"card_number"`
	CardHolder       string    `json:"card_holder"`
	CardExpiry       string    `json:"card_expiry"`
	CardCVV          string    `json:"card_cvv"`
	Total            float64   `json:"total"`
	CreatedAt        time.Time `json:"created_at"`
	ItemsCount       int64     `json:"items_count"`
}
