package service

import (
	"fmt"

	"github.com/codeAntu/battle-zone-sub000/internal/domain"
	"github.com/codeAntu/battle-zone-sub000/internal/models"
	"github.com/codeAntu/battle-zone-sub000/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WalletService runs the deposit/withdrawal request workflow. Balances move
// only on admin approval; requests and their ledger entries flip together in
// one transaction.
type WalletService struct {
	db          *gorm.DB
	requestRepo *repository.WalletRequestRepository
	ledgerRepo  *repository.LedgerRepository
	userRepo    *repository.UserRepository
}

func NewWalletService(
	db *gorm.DB,
	requestRepo *repository.WalletRequestRepository,
	ledgerRepo *repository.LedgerRepository,
	userRepo *repository.UserRepository,
) *WalletService {
	return &WalletService{
		db:          db,
		requestRepo: requestRepo,
		ledgerRepo:  ledgerRepo,
		userRepo:    userRepo,
	}
}

// RequestDeposit records a pending deposit. Funds are credited only when an
// admin confirms the external payment reference.
func (s *WalletService) RequestDeposit(userID uint, amount int64, upiID, externalTxnID string) (*models.WalletRequest, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	req := &models.WalletRequest{
		UserID:        userID,
		Type:          domain.RequestTypeDeposit,
		OrderID:       fmt.Sprintf("dep-%s", uuid.New().String()),
		Amount:        amount,
		UpiID:         upiID,
		ExternalTxnID: externalTxnID,
		Status:        domain.StatusPending,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.requestRepo.CreateTx(tx, req); err != nil {
			return err
		}
		_, err := s.ledgerRepo.CreatePendingTx(tx, userID, amount, domain.TxTypeDeposit,
			domain.EffectIncrease, req.OrderID, fmt.Sprintf("Deposit request of %d", amount))
		return err
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

// RequestWithdrawal records a pending withdrawal. The balance is checked here
// for early feedback but not reserved; approval re-validates it.
func (s *WalletService) RequestWithdrawal(userID uint, amount int64, upiID string) (*models.WalletRequest, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u.Balance < amount {
		return nil, domain.ErrInsufficientFunds
	}
	req := &models.WalletRequest{
		UserID:  userID,
		Type:    domain.RequestTypeWithdrawal,
		OrderID: fmt.Sprintf("wd-%s", uuid.New().String()),
		Amount:  amount,
		UpiID:   upiID,
		Status:  domain.StatusPending,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.requestRepo.CreateTx(tx, req); err != nil {
			return err
		}
		_, err := s.ledgerRepo.CreatePendingTx(tx, userID, amount, domain.TxTypeWithdrawal,
			domain.EffectDecrease, req.OrderID, fmt.Sprintf("Withdrawal request of %d to %s", amount, upiID))
		return err
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

// ApproveDeposit confirms an externally settled deposit and credits the user.
func (s *WalletService) ApproveDeposit(requestID uint) (*models.WalletRequest, error) {
	return s.approve(requestID, domain.RequestTypeDeposit)
}

// ApproveWithdrawal debits the user. If the balance has since dropped below
// the requested amount the approval fails with ErrInsufficientFunds and the
// request stays pending for retry or rejection.
func (s *WalletService) ApproveWithdrawal(requestID uint) (*models.WalletRequest, error) {
	return s.approve(requestID, domain.RequestTypeWithdrawal)
}

func (s *WalletService) approve(requestID uint, expectType string) (*models.WalletRequest, error) {
	var req *models.WalletRequest
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		req, err = s.requestRepo.GetByIDTx(tx, requestID)
		if err != nil {
			return err
		}
		if req.Type != expectType {
			return domain.ErrRequestNotFound
		}
		if req.Status != domain.StatusPending {
			return domain.ErrAlreadyDecided
		}
		if err := s.ledgerRepo.ApprovePendingTx(tx, req.OrderID); err != nil {
			return err
		}
		decided, err := s.requestRepo.DecideTx(tx, requestID, domain.StatusApproved, "")
		if err != nil {
			return err
		}
		if !decided {
			return domain.ErrAlreadyDecided
		}
		req.Status = domain.StatusApproved
		return nil
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

// Reject moves a pending request to REJECTED. A non-empty reason is required;
// there is no balance effect.
func (s *WalletService) Reject(requestID uint, reason string) (*models.WalletRequest, error) {
	if reason == "" {
		return nil, domain.ErrReasonRequired
	}
	var req *models.WalletRequest
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		req, err = s.requestRepo.GetByIDTx(tx, requestID)
		if err != nil {
			return err
		}
		if req.Status != domain.StatusPending {
			return domain.ErrAlreadyDecided
		}
		if err := s.ledgerRepo.RejectPendingTx(tx, req.OrderID); err != nil {
			return err
		}
		decided, err := s.requestRepo.DecideTx(tx, requestID, domain.StatusRejected, reason)
		if err != nil {
			return err
		}
		if !decided {
			return domain.ErrAlreadyDecided
		}
		req.Status = domain.StatusRejected
		req.RejectReason = reason
		return nil
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (s *WalletService) ListRequests(reqType, status string, page, limit int) ([]models.WalletRequest, int64, error) {
	return s.requestRepo.List(reqType, status, page, limit)
}

func (s *WalletService) ListUserRequests(userID uint, page, limit int) ([]models.WalletRequest, int64, error) {
	return s.requestRepo.ListByUser(userID, page, limit)
}

func (s *WalletService) History(userID uint, page, limit int) ([]models.Transaction, int64, error) {
	return s.ledgerRepo.History(userID, page, limit)
}
