package database

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/bookhaven/bookhaven-backend/internal/config"
	"github.com/bookhaven/bookhaven-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var seedBooks = []models.Product{
	{ID: "1", Name: "Cien Años de Soledad", Price: 4500, Description: "Obra maestra de Gabriel García Márquez.", Category: "Realismo Mágico", Image: "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?w=300&h=400&fit=crop&auto=format&q=80", Author: "Gabriel García Márquez", Pages: 471},
	{ID: "2", Name: "1984", Price: 3800, Description: "Distopía clásica de George Orwell.", Category: "Ciencia Ficción", Image: "https://images.unsplash.com/photo-1589998059171-988d887df646?w=300&h=400&fit=crop&auto=format&q=80", Author: "George Orwell", Pages: 328},
	{ID: "3", Name: "El Principito", Price: 2800, Description: "Fábula poética de Antoine de Saint-Exupéry.", Category: "Literatura Infantil", Image: "https://images.unsplash.com/photo-1532012197267-da84d127e765?w=300&h=400&fit=crop&auto=format&q=80", Author: "Antoine de Saint-Exupéry", Pages: 96},
	{ID: "4", Name: "Orgullo y Prejuicio", Price: 4200, Description: "Novela romántica de Jane Austen.", Category: "Romance Clásico", Image: "https://images.unsplash.com/photo-1621351183012-e2f9972dd9bf?w=300&h=400&fit=crop&auto=format&q=80", Author: "Jane Austen", Pages: 432},
	{ID: "5", Name: "El Señor de los Anillos", Price: 5800, Description: "Trilogía épica de J.R.R. Tolkien.", Category: "Fantasía", Image: "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=300&h=400&fit=crop&auto=format&q=80", Author: "J.R.R. Tolkien", Pages: 450},
	{ID: "6", Name: "Crimen y Castigo", Price: 3900, Description: "Novela psicológica de Fiódor Dostoyevski.", Category: "Clásicos Rusos", Image: "https://images.unsplash.com/photo-1512820790803-83ca734da794?w=300&h=400&fit=crop&auto=format&q=80", Author: "Fiódor Dostoyevski", Pages: 527},
}

// Seed inserts the administrator account and the sample catalog when the
// corresponding tables are empty. Safe to call on every startup.
func Seed(db *gorm.DB, cfg *config.Config) error {
	if err := seedAdmin(db, cfg); err != nil {
		return err
	}
	return seedCatalog(db)
}

func seedAdmin(db *gorm.DB, cfg *config.Config) error {
	var existing models.User
	err := db.Where("email = ?", cfg.AdminEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check admin account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.User{
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Name:     cfg.AdminName,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	slog.Info("seeded admin account", "email", cfg.AdminEmail)
	return nil
}

func seedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		slog.Info("catalog already seeded", "books", count)
		return nil
	}

	books := make([]models.Product, len(seedBooks))
	copy(books, seedBooks)
	if err := db.Create(&books).Error; err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	slog.Info("seeded sample catalog", "books", len(seedBooks))
	return nil
}
