package services

import (
	"fmt"
	"strings"
	"testing"

	"risiko-ladder-api/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory sqlite database private to the calling test.
// The services run the same gorm code against it as against postgres.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Player{}, &models.Match{}, &models.Participation{}, &models.Setting{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func createTestPlayer(t *testing.T, playerService *PlayerService, name string) *models.Player {
	t.Helper()

	player, err := playerService.CreatePlayer(name)
	if err != nil {
		t.Fatalf("failed to create player %s: %v", name, err)
	}
	return player
}
