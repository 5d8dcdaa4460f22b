package handlers

import (
	"encoding/json"
	"log/slog"

	"github.com/bookhaven/bookhaven-backend/internal/dto"
	"github.com/bookhaven/bookhaven-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// storeConfigDefaults are seeded once when a key is absent.
var storeConfigDefaults = map[string]interface{}{
	"currency":                "ARS",
	"external_search_enabled": true,
	"max_cart_quantity":       10,
}

type StoreConfigHandler struct {
	db *gorm.DB
}

func NewStoreConfigHandler(db *gorm.DB) *StoreConfigHandler {
	return &StoreConfigHandler{db: db}
}

// SeedDefaults inserts any missing default config keys.
func (h *StoreConfigHandler) SeedDefaults() {
	for key, value := range storeConfigDefaults {
		var existing models.StoreConfig
		if err := h.db.Where("key = ?", key).First(&existing).Error; err == nil {
			continue
		}

		raw, err := json.Marshal(value)
		if err != nil {
			slog.Error("failed to marshal config default", "key", key, "error", err)
			continue
		}

		entry := models.StoreConfig{Key: key, Value: datatypes.JSON(raw)}
		if err := h.db.Create(&entry).Error; err != nil {
			slog.Error("failed to seed config default", "key", key, "error", err)
		}
	}
}

// GetConfig returns the storefront runtime configuration as a flat map.
func (h *StoreConfigHandler) GetConfig(c *fiber.Ctx) error {
	var configs []models.StoreConfig
	if err := h.db.Find(&configs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch configuration",
		})
	}

	result := make(map[string]interface{}, len(configs))
	for _, cfg := range configs {
		var value interface{}
		if err := json.Unmarshal(cfg.Value, &value); err != nil {
			value = string(cfg.Value)
		}
		result[cfg.Key] = value
	}

	return c.JSON(result)
}
