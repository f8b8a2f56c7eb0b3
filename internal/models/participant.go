package models

import "time"

// Participant is the enrollment record for one user in one tournament.
// At most one row per (tournament, user) pair; never deleted.
type Participant struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	TournamentID uint `gorm:"not null;uniqueIndex:idx_tournament_user" json:"tournament_id"`
	UserID       uint `gorm:"not null;uniqueIndex:idx_tournament_user;index" json:"user_id"`

	PlayerUsername string `gorm:"size:64;not null" json:"player_username"`
	PlayerID       string `gorm:"size:64;not null" json:"player_id"`
	PlayerLevel    int    `gorm:"not null" json:"player_level"`

	// Kills is overwritten (not accumulated) by admin updates and frozen once
	// the tournament ends.
	Kills    int       `gorm:"not null;default:0" json:"kills"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joined_at"`

	Tournament Tournament `gorm:"foreignKey:TournamentID" json:"-"`
	User       User       `gorm:"foreignKey:UserID" json:"-"`
}

func (Participant) TableName() string {
	return "participants"
}
