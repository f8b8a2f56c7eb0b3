package service

import (
	"errors"
	"fmt"

	"github.com/codeAntu/battle-zone-sub000/internal/domain"
	"github.com/codeAntu/battle-zone-sub000/internal/models"
	"github.com/codeAntu/battle-zone-sub000/internal/repository"

	"gorm.io/gorm"
)

// PlayerProfile is the in-game identity captured at join time.
type PlayerProfile struct {
	Username string
	PlayerID string
	Level    int
}

// EnrollmentService governs tournament joins, kill recording and
// participation reads. The join unit (fee debit, participant insert, capacity
// increment) is a single transaction, so a lost capacity race rolls the fee
// back automatically.
type EnrollmentService struct {
	db              *gorm.DB
	tournamentRepo  *repository.TournamentRepository
	participantRepo *repository.ParticipantRepository
	ledgerRepo      *repository.LedgerRepository
	minPlayerLevel  int
}

func NewEnrollmentService(
	db *gorm.DB,
	tournamentRepo *repository.TournamentRepository,
	participantRepo *repository.ParticipantRepository,
	ledgerRepo *repository.LedgerRepository,
	minPlayerLevel int,
) *EnrollmentService {
	return &EnrollmentService{
		db:              db,
		tournamentRepo:  tournamentRepo,
		participantRepo: participantRepo,
		ledgerRepo:      ledgerRepo,
		minPlayerLevel:  minPlayerLevel,
	}
}

func (s *EnrollmentService) Join(tournamentID, userID uint, profile PlayerProfile) (*models.Participant, error) {
	var participant *models.Participant
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var t models.Tournament
		if err := tx.First(&t, tournamentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrTournamentNotFound
			}
			return err
		}
		if t.IsEnded {
			return domain.ErrTournamentEnded
		}
		if t.CurrentParticipants >= t.MaxParticipants {
			return domain.ErrTournamentFull
		}
		joined, err := s.participantRepo.ExistsTx(tx, tournamentID, userID)
		if err != nil {
			return err
		}
		if joined {
			return domain.ErrAlreadyJoined
		}
		if profile.Username == "" || profile.PlayerID == "" || profile.Level < s.minPlayerLevel {
			return domain.ErrInvalidProfile
		}
		if t.EntryFee > 0 {
			_, err := s.ledgerRepo.DebitTx(tx, userID, t.EntryFee, domain.TxTypeEntryFee,
				fmt.Sprintf("tournament-%d", tournamentID),
				fmt.Sprintf("Entry fee for %s", t.Name))
			if err != nil {
				return err
			}
		}
		participant = &models.Participant{
			TournamentID:   tournamentID,
			UserID:         userID,
			PlayerUsername: profile.Username,
			PlayerID:       profile.PlayerID,
			PlayerLevel:    profile.Level,
		}
		if err := s.participantRepo.CreateTx(tx, participant); err != nil {
			// The unique index backstops the existence check under races.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrAlreadyJoined
			}
			return err
		}
		// Claim the slot last: losing the race here rolls back the fee debit
		// and the participant row together.
		claimed, err := s.tournamentRepo.IncrementParticipantsTx(tx, tournamentID)
		if err != nil {
			return err
		}
		if !claimed {
			return domain.ErrTournamentFull
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return participant, nil
}

func (s *EnrollmentService) IsParticipated(tournamentID, userID uint) (bool, error) {
	_, err := s.participantRepo.Get(tournamentID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *EnrollmentService) ListParticipants(tournamentID uint) ([]models.Participant, error) {
	if _, err := s.tournamentRepo.GetByID(tournamentID); err != nil {
		return nil, err
	}
	return s.participantRepo.ListByTournament(tournamentID)
}

func (s *EnrollmentService) ListUserTournaments(userID uint) ([]models.Tournament, error) {
	return s.participantRepo.ListUserTournaments(userID)
}

// RecordKills overwrites the participant's kill count (last write wins).
// Rejected once the tournament has ended; kill counts never go negative.
func (s *EnrollmentService) RecordKills(tournamentID, userID uint, kills int) error {
	if kills < 0 {
		return domain.ErrInvalidKillCount
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var t models.Tournament
		if err := tx.First(&t, tournamentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrTournamentNotFound
			}
			return err
		}
		if t.IsEnded {
			return domain.ErrTournamentEnded
		}
		enrolled, err := s.participantRepo.ExistsTx(tx, tournamentID, userID)
		if err != nil {
			return err
		}
		if !enrolled {
			return domain.ErrNotEnrolled
		}
		return s.participantRepo.SetKillsTx(tx, tournamentID, userID, kills)
	})
}
