package models

import (
	"time"

	"github.com/codeAntu/battle-zone-sub000/internal/domain"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:64;not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"size:255" json:"-"`
	Role         string    `gorm:"size:20;not null;index" json:"role"` // USER | ADMIN
	IsVerified   bool      `gorm:"default:false" json:"is_verified"`
	// Balance is mutated only through the ledger repository; never deleted,
	// accounts are deactivated instead.
	Balance   int64     `gorm:"not null;default:0" json:"balance"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool { return u.Role == domain.RoleAdmin }
