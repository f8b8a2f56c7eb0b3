package testutil

import (
	"path/filepath"
	"testing"

	"github.com/codeAntu/battle-zone-sub000/internal/database"
	"github.com/codeAntu/battle-zone-sub000/internal/domain"
	"github.com/codeAntu/battle-zone-sub000/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a throwaway SQLite database with the full schema migrated.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "battlezone_test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// CreateUser inserts a user with the given starting balance.
func CreateUser(t *testing.T, db *gorm.DB, email string, balance int64) *models.User {
	t.Helper()
	u := &models.User{
		Name:    "Player",
		Email:   email,
		Role:    domain.RoleUser,
		Balance: balance,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return u
}

// CreateAdmin inserts an admin user.
func CreateAdmin(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	u := &models.User{
		Name:  "Admin",
		Email: email,
		Role:  domain.RoleAdmin,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create admin %s: %v", email, err)
	}
	return u
}

// Balance reads the current balance straight from the users table.
func Balance(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()
	var u models.User
	if err := db.First(&u, userID).Error; err != nil {
		t.Fatalf("load user %d: %v", userID, err)
	}
	return u.Balance
}
