package models

import "time"

// Winning is an immutable payout record created once per settlement credit;
// a winner who also earned kill bonuses gets one row per credit.
type Winning struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	TournamentID uint      `gorm:"not null;index" json:"tournament_id"`
	Amount       int64     `gorm:"not null" json:"amount"`
	CreatedAt    time.Time `json:"created_at"`

	User       User       `gorm:"foreignKey:UserID" json:"-"`
	Tournament Tournament `gorm:"foreignKey:TournamentID" json:"-"`
}

func (Winning) TableName() string {
	return "winnings"
}
