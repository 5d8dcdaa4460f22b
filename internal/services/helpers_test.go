package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/bookhaven/bookhaven-backend/internal/config"
	"github.com/bookhaven/bookhaven-backend/internal/database"
	"github.com/bookhaven/bookhaven-backend/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.MigrateModels(db))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		JWTAccessExpiry: time.Hour,
	}
}

func seedTestCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	books := []models.Product{
		{ID: "1", Name: "Cien Años de Soledad", Price: 4500, Author: "Gabriel García Márquez"},
		{ID: "2", Name: "1984", Price: 3800, Author: "George Orwell"},
	}
	require.NoError(t, db.Create(&books).Error)
}
