package handlers

import (
	"errors"
	"log/slog"

	"github.com/bookhaven/bookhaven-backend/internal/dto"
	"github.com/bookhaven/bookhaven-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type BooksHandler struct {
	booksService *services.BooksService
}

func NewBooksHandler(booksService *services.BooksService) *BooksHandler {
	return &BooksHandler{booksService: booksService}
}

// Search proxies the free-text query to the external provider.
func (h *BooksHandler) Search(c *fiber.Ctx) error {
	query := c.Query("search", "literatura")

	books, err := h.booksService.Search(c.UserContext(), query)
	if err != nil {
		if errors.Is(err, services.ErrQueryTooShort) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("external book search failed", "error", err, "query", query)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Book search provider unavailable: " + err.Error(),
		})
	}

	return c.JSON(books)
}
