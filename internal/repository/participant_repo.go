package repository

import (
	"github.com/codeAntu/battle-zone-sub000/internal/models"

	"gorm.io/gorm"
)

type ParticipantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

func (r *ParticipantRepository) CreateTx(tx *gorm.DB, p *models.Participant) error {
	return tx.Create(p).Error
}

func (r *ParticipantRepository) Get(tournamentID, userID uint) (*models.Participant, error) {
	var p models.Participant
	err := r.db.Where("tournament_id = ? AND user_id = ?", tournamentID, userID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ParticipantRepository) ExistsTx(tx *gorm.DB, tournamentID, userID uint) (bool, error) {
	var count int64
	err := tx.Model(&models.Participant{}).
		Where("tournament_id = ? AND user_id = ?", tournamentID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *ParticipantRepository) ListByTournament(tournamentID uint) ([]models.Participant, error) {
	var list []models.Participant
	err := r.db.Where("tournament_id = ?", tournamentID).Order("joined_at ASC").Find(&list).Error
	return list, err
}

func (r *ParticipantRepository) ListByTournamentTx(tx *gorm.DB, tournamentID uint) ([]models.Participant, error) {
	var list []models.Participant
	err := tx.Where("tournament_id = ?", tournamentID).Order("joined_at ASC").Find(&list).Error
	return list, err
}

// ListUserTournaments returns the tournaments a user has participated in,
// most recent first.
func (r *ParticipantRepository) ListUserTournaments(userID uint) ([]models.Tournament, error) {
	var list []models.Tournament
	err := r.db.Model(&models.Tournament{}).
		Joins("JOIN participants ON participants.tournament_id = tournaments.id").
		Where("participants.user_id = ?", userID).
		Order("participants.joined_at DESC").
		Find(&list).Error
	return list, err
}

// SetKillsTx overwrites the stored kill count (last write wins).
func (r *ParticipantRepository) SetKillsTx(tx *gorm.DB, tournamentID, userID uint, kills int) error {
	return tx.Model(&models.Participant{}).
		Where("tournament_id = ? AND user_id = ?", tournamentID, userID).
		Update("kills", kills).Error
}
