package models

import "time"

type Tournament struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	AdminID     uint   `gorm:"not null;index" json:"admin_id"`
	Game        string `gorm:"size:20;not null;index" json:"game"` // BGMI | FREEFIRE | PUBG | COD
	Name        string `gorm:"size:128;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	// Room credentials are assigned by the admin after creation and become
	// immutable once the tournament has ended.
	RoomID       string `gorm:"size:64" json:"room_id"`
	RoomPassword string `gorm:"size:64" json:"room_password"`

	EntryFee     int64 `gorm:"not null;default:0" json:"entry_fee"`
	Prize        int64 `gorm:"not null;default:0" json:"prize"`
	PerKillPrize int64 `gorm:"not null;default:0" json:"per_kill_prize"`

	MaxParticipants     int `gorm:"not null" json:"max_participants"`
	CurrentParticipants int `gorm:"not null;default:0" json:"current_participants"`

	ScheduledAt time.Time `gorm:"not null;index" json:"scheduled_at"`
	// IsEnded transitions exactly once, false -> true.
	IsEnded   bool      `gorm:"not null;default:false;index" json:"is_ended"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Admin User `gorm:"foreignKey:AdminID" json:"-"`
}

func (Tournament) TableName() string {
	return "tournaments"
}
