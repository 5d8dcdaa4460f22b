package handlers

import (
	"log/slog"

	"github.com/bookhaven/bookhaven-backend/internal/dto"
	"github.com/bookhaven/bookhaven-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	gateway services.PaymentGateway
}

func NewPaymentHandler(gateway services.PaymentGateway) *PaymentHandler {
	return &PaymentHandler{gateway: gateway}
}

// Charge runs a standalone charge against the configured gateway.
func (h *PaymentHandler) Charge(c *fiber.Ctx) error {
	var req dto.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	result, err := h.gateway.Charge(c.UserContext(), req.Amount)
	if err != nil {
		slog.Error("payment gateway failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Payment gateway unavailable",
		})
	}

	if !result.Approved {
		return c.Status(fiber.StatusPaymentRequired).JSON(dto.PaymentResponse{
			Status: "declined",
			Reason: result.Reason,
		})
	}

	slog.Info("simulated payment approved", "amount", req.Amount, "tx", result.TxID)
	return c.JSON(dto.PaymentResponse{
		Status: "success",
		Tx:     result.TxID,
		Reason: result.Reason,
	})
}
