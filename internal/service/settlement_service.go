package service

import (
	"fmt"

	"github.com/codeAntu/battle-zone-sub000/internal/domain"
	"github.com/codeAntu/battle-zone-sub000/internal/models"
	"github.com/codeAntu/battle-zone-sub000/internal/repository"

	"gorm.io/gorm"
)

// SettlementService ends a tournament and disburses everything owed: kill
// bonuses for every participant with kills, then the base prize for the
// designated winner. The whole settlement is one transaction; a failed credit
// leaves the tournament open for retry, and the conditional is_ended flip
// makes a second settlement a no-op error rather than a double payout.
type SettlementService struct {
	db              *gorm.DB
	tournamentRepo  *repository.TournamentRepository
	participantRepo *repository.ParticipantRepository
	ledgerRepo      *repository.LedgerRepository
	winningRepo     *repository.WinningRepository
}

func NewSettlementService(
	db *gorm.DB,
	tournamentRepo *repository.TournamentRepository,
	participantRepo *repository.ParticipantRepository,
	ledgerRepo *repository.LedgerRepository,
	winningRepo *repository.WinningRepository,
) *SettlementService {
	return &SettlementService{
		db:              db,
		tournamentRepo:  tournamentRepo,
		participantRepo: participantRepo,
		ledgerRepo:      ledgerRepo,
		winningRepo:     winningRepo,
	}
}

func (s *SettlementService) EndTournament(tournamentID, winnerUserID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		// The flag flip is the mutual-exclusion gate: only the first caller
		// proceeds past this point.
		ended, err := s.tournamentRepo.MarkEndedTx(tx, tournamentID)
		if err != nil {
			return err
		}
		if !ended {
			var count int64
			if err := tx.Model(&models.Tournament{}).Where("id = ?", tournamentID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return domain.ErrTournamentNotFound
			}
			return domain.ErrTournamentEnded
		}

		var t models.Tournament
		if err := tx.First(&t, tournamentID).Error; err != nil {
			return err
		}

		winnerEnrolled, err := s.participantRepo.ExistsTx(tx, tournamentID, winnerUserID)
		if err != nil {
			return err
		}
		if !winnerEnrolled {
			return domain.ErrWinnerNotEnrolled
		}

		participants, err := s.participantRepo.ListByTournamentTx(tx, tournamentID)
		if err != nil {
			return err
		}
		reference := fmt.Sprintf("tournament-%d", tournamentID)

		for _, p := range participants {
			if p.Kills <= 0 || t.PerKillPrize <= 0 {
				continue
			}
			bonus := int64(p.Kills) * t.PerKillPrize
			_, err := s.ledgerRepo.CreditTx(tx, p.UserID, bonus, domain.TxTypeKillBonus,
				reference, fmt.Sprintf("Kill bonus for %d kills in %s", p.Kills, t.Name))
			if err != nil {
				return err
			}
			w := &models.Winning{UserID: p.UserID, TournamentID: tournamentID, Amount: bonus}
			if err := s.winningRepo.CreateTx(tx, w); err != nil {
				return err
			}
		}

		if t.Prize > 0 {
			_, err := s.ledgerRepo.CreditTx(tx, winnerUserID, t.Prize, domain.TxTypeWinnings,
				reference, fmt.Sprintf("Winner prize for %s", t.Name))
			if err != nil {
				return err
			}
			w := &models.Winning{UserID: winnerUserID, TournamentID: tournamentID, Amount: t.Prize}
			if err := s.winningRepo.CreateTx(tx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SettlementService) ListUserWinnings(userID uint) ([]models.Winning, error) {
	return s.winningRepo.ListByUser(userID)
}
