package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/bookhaven/bookhaven-backend/internal/dto"
	"github.com/bookhaven/bookhaven-backend/internal/identity"
	"github.com/bookhaven/bookhaven-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart        = errors.New("cart must contain at least one item")
	ErrMissingFields    = errors.New("all shipping and card fields are required")
	ErrInvalidQuantity  = errors.New("item quantity must be at least 1")
	ErrUnknownProduct   = errors.New("unknown product in cart")
	ErrMissingUnitPrice = errors.New("external cart items must carry a unit price")
	ErrTotalMismatch    = errors.New("submitted total does not match the priced cart")
	ErrPaymentDeclined  = errors.New("payment declined")
)

// Submitted totals may differ from the recomputed sum by at most one cent.
const totalTolerance = 0.01

type OrderService struct {
	db      *gorm.DB
	gateway PaymentGateway
}

func NewOrderService(db *gorm.DB, gateway PaymentGateway) *OrderService {
	return &OrderService{db: db, gateway: gateway}
}

// Checkout runs the full order flow: field validation, server-side total
// verification, payment authorization, then one transaction writing the order
// and all of its items. Nothing is persisted unless every step succeeds.
func (s *OrderService) Checkout(ctx context.Context, user *identity.Claims, req *dto.CheckoutRequest) (string, error) {
	if err := validateCheckout(req); err != nil {
		return "", err
	}

	items, total, err := s.priceCart(req.Items)
	if err != nil {
		return "", err
	}
	if math.Abs(total-req.Total) > totalTolerance {
		return "", fmt.Errorf("%w: submitted %.2f, computed %.2f", ErrTotalMismatch, req.Total, total)
	}

	result, err := s.gateway.Charge(ctx, total)
	if err != nil {
		return "", fmt.Errorf("payment gateway failed: %w", err)
	}
	if !result.Approved {
		return "", fmt.Errorf("%w: %s", ErrPaymentDeclined, result.Reason)
	}

	order := models.Order{
		ID:               result.TxID,
		UserID:           user.ID,
		CustomerName:     req.CustomerName,
		CustomerLastname: req.CustomerLastname,
		// Email of record comes from the credential, not the form.
		CustomerEmail:   user.Email,
		CustomerAddress: req.CustomerAddress,
		CustomerCity:    req.CustomerCity,
		CustomerZip:     req.CustomerZip,
		CardNumber:      maskCardNumber(req.CardNumber),
		CardHolder:      req.CardHolder,
		CardExpiry:      req.CardExpiry,
		CardCVV:         maskCVV(req.CardCVV),
		Total:           total,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("failed to create order items: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return order.ID, nil
}

// ListOrders returns the caller's orders annotated with their item counts,
// newest first. Ownership is enforced here, never by caller-supplied ids.
func (s *OrderService) ListOrders(userID uuid.UUID) ([]dto.OrderSummary, error) {
	var summaries []dto.OrderSummary
	err := s.db.Model(&models.Order{}).
		Select("orders.*, COUNT(order_items.id) AS items_count").
		Joins("LEFT JOIN order_items ON order_items.order_id = orders.id").
		Where("orders.user_id = ?", userID).
		Group("orders.id").
		Order("orders.created_at DESC").
		Scan(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return summaries, nil
}

func validateCheckout(req *dto.CheckoutRequest) error {
	required := []string{
		req.CustomerName, req.CustomerLastname, req.CustomerAddress,
		req.CustomerCity, req.CustomerZip,
		req.CardNumber, req.CardHolder, req.CardExpiry, req.CardCVV,
	}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return ErrMissingFields
		}
	}
	if len(req.Items) == 0 {
		return ErrEmptyCart
	}
	return nil
}

// priceCart resolves the authoritative unit price for every cart line. Local
// items are priced from the products table; external (prefixed) items have no
// persisted row and use the caller-supplied unit price.
func (s *OrderService) priceCart(cart []dto.CheckoutItem) ([]models.OrderItem, float64, error) {
	items := make([]models.OrderItem, 0, len(cart))
	var total float64

	for _, line := range cart {
		if line.Qty < 1 {
			return nil, 0, ErrInvalidQuantity
		}

		var unit float64
		if models.IsExternalProduct(line.ID) {
			if line.Price <= 0 {
				return nil, 0, fmt.Errorf("%w: %s", ErrMissingUnitPrice, line.ID)
			}
			unit = line.Price
		} else {
			var product models.Product
			if err := s.db.First(&product, "id = ?", line.ID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, 0, fmt.Errorf("%w: %s", ErrUnknownProduct, line.ID)
				}
				return nil, 0, fmt.Errorf("failed to price cart: %w", err)
			}
			unit = product.Price
		}

		total += unit * float64(line.Qty)
		items = append(items, models.OrderItem{
			ProductID: line.ID,
			Quantity:  line.Qty,
			UnitPrice: unit,
		})
	}

	return items, total, nil
}

// maskCardNumber keeps only the last four digits in the stored value.
func maskCardNumber(number string) string {
	if number == "" {
		return ""
	}
	trimmed := strings.ReplaceAll(strings.ReplaceAll(number, " ", ""), "-", "")
	if len(trimmed) > 4 {
		trimmed = trimmed[len(trimmed)-4:]
	}
	return "****-****-****-" + trimmed
}

// maskCVV redacts the CVV entirely; it is never stored in recoverable form.
func maskCVV(cvv string) string {
	if cvv == "" {
		return ""
	}
	return "***"
}
