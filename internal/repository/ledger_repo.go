package repository

import (
	"github.com/codeAntu/battle-zone-sub000/internal/domain"
	"github.com/codeAntu/battle-zone-sub000/internal/models"

	"gorm.io/gorm"
)

// LedgerRepository is the single writer of user balances. Every balance
// mutation is a conditional UPDATE paired with an entry insert in the same
// transaction, so concurrent credits and debits against one user stay
// linearizable without read-modify-write races.
type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// Credit increases the user's balance and records an approved ledger entry.
func (r *LedgerRepository) Credit(userID uint, amount int64, txType, reference, message string) (*models.Transaction, error) {
	var entry *models.Transaction
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var err error
		entry, err = r.CreditTx(tx, userID, amount, txType, reference, message)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Debit decreases the user's balance and records an approved ledger entry.
// Fails with domain.ErrInsufficientFunds, with zero effect, if the amount
// exceeds the current balance.
func (r *LedgerRepository) Debit(userID uint, amount int64, txType, reference, message string) (*models.Transaction, error) {
	var entry *models.Transaction
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var err error
		entry, err = r.DebitTx(tx, userID, amount, txType, reference, message)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// CreditTx applies a credit inside an existing transaction. Settlement uses
// this to fan out multiple credits as one atomic unit.
func (r *LedgerRepository) CreditTx(tx *gorm.DB, userID uint, amount int64, txType, reference, message string) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	res := tx.Model(&models.User{}).Where("id = ?", userID).
		Update("balance", gorm.Expr("balance + ?", amount))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrUserNotFound
	}
	entry := &models.Transaction{
		UserID:        userID,
		Amount:        amount,
		Type:          txType,
		BalanceEffect: domain.EffectIncrease,
		Status:        domain.StatusApproved,
		Reference:     reference,
		Message:       message,
	}
	if err := tx.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// DebitTx applies a debit inside an existing transaction. The balance guard
// lives in the WHERE clause, which is what keeps two concurrent debits from
// both passing when their sum exceeds the balance.
func (r *LedgerRepository) DebitTx(tx *gorm.DB, userID uint, amount int64, txType, reference, message string) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	res := tx.Model(&models.User{}).Where("id = ? AND balance >= ?", userID, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.ErrInsufficientFunds
	}
	entry := &models.Transaction{
		UserID:        userID,
		Amount:        amount,
		Type:          txType,
		BalanceEffect: domain.EffectDecrease,
		Status:        domain.StatusApproved,
		Reference:     reference,
		Message:       message,
	}
	if err := tx.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// CreatePendingTx records a request-backed entry without touching the balance.
// The wallet workflow flips it on admin decision.
func (r *LedgerRepository) CreatePendingTx(tx *gorm.DB, userID uint, amount int64, txType, effect, reference, message string) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	entry := &models.Transaction{
		UserID:        userID,
		Amount:        amount,
		Type:          txType,
		BalanceEffect: effect,
		Status:        domain.StatusPending,
		Reference:     reference,
		Message:       message,
	}
	if err := tx.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// ApprovePendingTx applies the balance effect of a pending request-backed
// entry and marks it approved. Decreases re-check funds at approval time.
func (r *LedgerRepository) ApprovePendingTx(tx *gorm.DB, reference string) error {
	var entry models.Transaction
	err := tx.Where("reference = ? AND status = ?", reference, domain.StatusPending).First(&entry).Error
	if err != nil {
		return err
	}
	if entry.BalanceEffect == domain.EffectIncrease {
		res := tx.Model(&models.User{}).Where("id = ?", entry.UserID).
			Update("balance", gorm.Expr("balance + ?", entry.Amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrUserNotFound
		}
	} else {
		res := tx.Model(&models.User{}).Where("id = ? AND balance >= ?", entry.UserID, entry.Amount).
			Update("balance", gorm.Expr("balance - ?", entry.Amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrInsufficientFunds
		}
	}
	return tx.Model(&entry).Update("status", domain.StatusApproved).Error
}

// RejectPendingTx marks a pending request-backed entry rejected; no balance
// effect.
func (r *LedgerRepository) RejectPendingTx(tx *gorm.DB, reference string) error {
	return tx.Model(&models.Transaction{}).
		Where("reference = ? AND status = ?", reference, domain.StatusPending).
		Update("status", domain.StatusRejected).Error
}

// History returns the user's ledger entries, newest first.
func (r *LedgerRepository) History(userID uint, page, limit int) ([]models.Transaction, int64, error) {
	q := r.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	var total int64
	q.Count(&total)
	var entries []models.Transaction
	err := q.Order("created_at DESC, id DESC").Limit(limit).Offset((page - 1) * limit).Find(&entries).Error
	return entries, total, err
}
