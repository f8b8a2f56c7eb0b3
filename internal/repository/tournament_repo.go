package repository

import (
	"errors"

	"github.com/codeAntu/battle-zone-sub000/internal/domain"
	"github.com/codeAntu/battle-zone-sub000/internal/models"

	"gorm.io/gorm"
)

type TournamentRepository struct {
	db *gorm.DB
}

func NewTournamentRepository(db *gorm.DB) *TournamentRepository {
	return &TournamentRepository{db: db}
}

func (r *TournamentRepository) Create(t *models.Tournament) error {
	return r.db.Create(t).Error
}

func (r *TournamentRepository) GetByID(id uint) (*models.Tournament, error) {
	var t models.Tournament
	if err := r.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTournamentNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TournamentRepository) Updates(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Tournament{}).Where("id = ?", id).Updates(fields).Error
}

// List returns tournaments filtered by game and lifecycle. Open tournaments
// are ordered by schedule (soonest first), history newest first.
func (r *TournamentRepository) List(game string, ended bool, page, limit int) ([]models.Tournament, int64, error) {
	q := r.db.Model(&models.Tournament{}).Where("is_ended = ?", ended)
	if game != "" {
		q = q.Where("game = ?", game)
	}
	var total int64
	q.Count(&total)
	order := "scheduled_at ASC"
	if ended {
		order = "updated_at DESC"
	}
	var list []models.Tournament
	err := q.Order(order).Limit(limit).Offset((page - 1) * limit).Find(&list).Error
	return list, total, err
}

// IncrementParticipantsTx claims one slot inside an existing transaction. The
// capacity ceiling and the ended gate live in the WHERE clause; zero rows
// means the slot race was lost.
func (r *TournamentRepository) IncrementParticipantsTx(tx *gorm.DB, id uint) (bool, error) {
	res := tx.Model(&models.Tournament{}).
		Where("id = ? AND current_participants < max_participants AND is_ended = ?", id, false).
		Update("current_participants", gorm.Expr("current_participants + 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// MarkEndedTx flips is_ended exactly once. Zero rows affected means the
// tournament was already ended (or missing), which is the settlement
// idempotency gate.
func (r *TournamentRepository) MarkEndedTx(tx *gorm.DB, id uint) (bool, error) {
	res := tx.Model(&models.Tournament{}).
		Where("id = ? AND is_ended = ?", id, false).
		Update("is_ended", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
