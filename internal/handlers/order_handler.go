package handlers

import (
	"errors"
	"log/slog"

	"github.com/bookhaven/bookhaven-backend/internal/dto"
	"github.com/bookhaven/bookhaven-backend/internal/identity"
	"github.com/bookhaven/bookhaven-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Checkout validates the submission, charges the gateway and persists the
// order with its items.
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	claims, err := identity.Current(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	orderID, err := h.orderService.Checkout(c.UserContext(), claims, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart),
			errors.Is(err, services.ErrMissingFields),
			errors.Is(err, services.ErrInvalidQuantity),
			errors.Is(err, services.ErrUnknownProduct),
			errors.Is(err, services.ErrMissingUnitPrice),
			errors.Is(err, services.ErrTotalMismatch):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrPaymentDeclined):
			return c.Status(fiber.StatusPaymentRequired).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			slog.Error("checkout failed", "error", err, "user_id", claims.ID.String())
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to create order",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CheckoutResponse{
		Status:  "success",
		OrderID: orderID,
	})
}

// List returns the caller's orders, newest first.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	claims, err := identity.Current(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	orders, err := h.orderService.ListOrders(claims.ID)
	if err != nil {
		slog.Error("failed to list orders", "error", err, "user_id", claims.ID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch orders",
		})
	}

	return c.JSON(orders)
}
