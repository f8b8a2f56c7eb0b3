package repository

import (
	"github.com/codeAntu/battle-zone-sub000/internal/models"

	"gorm.io/gorm"
)

type WinningRepository struct {
	db *gorm.DB
}

func NewWinningRepository(db *gorm.DB) *WinningRepository {
	return &WinningRepository{db: db}
}

func (r *WinningRepository) CreateTx(tx *gorm.DB, w *models.Winning) error {
	return tx.Create(w).Error
}

func (r *WinningRepository) ListByUser(userID uint) ([]models.Winning, error) {
	var list []models.Winning
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *WinningRepository) ListByTournament(tournamentID uint) ([]models.Winning, error) {
	var list []models.Winning
	err := r.db.Where("tournament_id = ?", tournamentID).Order("id ASC").Find(&list).Error
	return list, err
}
