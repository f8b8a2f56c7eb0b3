package service

import (
	"time"

	"github.com/codeAntu/battle-zone-sub000/internal/domain"
	"github.com/codeAntu/battle-zone-sub000/internal/models"
	"github.com/codeAntu/battle-zone-sub000/internal/repository"
)

// TournamentInput carries the admin-supplied fields for create and update.
type TournamentInput struct {
	Game            string
	Name            string
	Description     string
	EntryFee        int64
	Prize           int64
	PerKillPrize    int64
	MaxParticipants int
	ScheduledAt     time.Time
}

type TournamentService struct {
	tournamentRepo *repository.TournamentRepository
}

func NewTournamentService(tournamentRepo *repository.TournamentRepository) *TournamentService {
	return &TournamentService{tournamentRepo: tournamentRepo}
}

func validateTournamentInput(in *TournamentInput) error {
	if !domain.IsKnownGame(in.Game) {
		return domain.ErrUnknownGame
	}
	if in.Name == "" {
		return domain.ErrNameRequired
	}
	if in.MaxParticipants <= 0 {
		return domain.ErrInvalidCapacity
	}
	if in.EntryFee < 0 || in.Prize < 0 || in.PerKillPrize < 0 {
		return domain.ErrInvalidAmount
	}
	if !in.ScheduledAt.After(time.Now()) {
		return domain.ErrPastSchedule
	}
	return nil
}

func (s *TournamentService) Create(adminID uint, in TournamentInput) (*models.Tournament, error) {
	if err := validateTournamentInput(&in); err != nil {
		return nil, err
	}
	t := &models.Tournament{
		AdminID:         adminID,
		Game:            in.Game,
		Name:            in.Name,
		Description:     in.Description,
		EntryFee:        in.EntryFee,
		Prize:           in.Prize,
		PerKillPrize:    in.PerKillPrize,
		MaxParticipants: in.MaxParticipants,
		ScheduledAt:     in.ScheduledAt,
	}
	if err := s.tournamentRepo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Update patches mutable fields; rejected once the tournament has ended.
func (s *TournamentService) Update(id uint, in TournamentInput) (*models.Tournament, error) {
	t, err := s.tournamentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t.IsEnded {
		return nil, domain.ErrTournamentEnded
	}
	if err := validateTournamentInput(&in); err != nil {
		return nil, err
	}
	if in.MaxParticipants < t.CurrentParticipants {
		return nil, domain.ErrInvalidCapacity
	}
	fields := map[string]interface{}{
		"game":             in.Game,
		"name":             in.Name,
		"description":      in.Description,
		"entry_fee":        in.EntryFee,
		"prize":            in.Prize,
		"per_kill_prize":   in.PerKillPrize,
		"max_participants": in.MaxParticipants,
		"scheduled_at":     in.ScheduledAt,
	}
	if err := s.tournamentRepo.Updates(id, fields); err != nil {
		return nil, err
	}
	return s.tournamentRepo.GetByID(id)
}

// SetRoom assigns room credentials post-creation; rejected once ended.
func (s *TournamentService) SetRoom(id uint, roomID, roomPassword string) (*models.Tournament, error) {
	t, err := s.tournamentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t.IsEnded {
		return nil, domain.ErrTournamentEnded
	}
	fields := map[string]interface{}{
		"room_id":       roomID,
		"room_password": roomPassword,
	}
	if err := s.tournamentRepo.Updates(id, fields); err != nil {
		return nil, err
	}
	return s.tournamentRepo.GetByID(id)
}

func (s *TournamentService) Get(id uint) (*models.Tournament, error) {
	return s.tournamentRepo.GetByID(id)
}

func (s *TournamentService) List(game string, ended bool, page, limit int) ([]models.Tournament, int64, error) {
	return s.tournamentRepo.List(game, ended, page, limit)
}
