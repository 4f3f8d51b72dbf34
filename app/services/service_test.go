package services

import (
	"path/filepath"
	"testing"
	"wordquest/app/db"
	"wordquest/app/models"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Connect(db.Config{Path: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	if err := gdb.AutoMigrate(&models.User{}, &models.Word{}, &models.LeaderboardEntry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}
