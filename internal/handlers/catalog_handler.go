package handlers

import (
	"log/slog"

	"github.com/bookhaven/bookhaven-backend/internal/dto"
	"github.com/bookhaven/bookhaven-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// List returns every persisted catalog product.
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	products, err := h.catalogService.ListProducts()
	if err != nil {
		slog.Error("failed to list products", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch products",
		})
	}

	return c.JSON(products)
}
