package repository

import (
	"errors"
	"time"

	"github.com/codeAntu/battle-zone-sub000/internal/domain"
	"github.com/codeAntu/battle-zone-sub000/internal/models"

	"gorm.io/gorm"
)

type WalletRequestRepository struct {
	db *gorm.DB
}

func NewWalletRequestRepository(db *gorm.DB) *WalletRequestRepository {
	return &WalletRequestRepository{db: db}
}

func (r *WalletRequestRepository) CreateTx(tx *gorm.DB, req *models.WalletRequest) error {
	return tx.Create(req).Error
}

func (r *WalletRequestRepository) GetByIDTx(tx *gorm.DB, id uint) (*models.WalletRequest, error) {
	var req models.WalletRequest
	if err := tx.First(&req, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

// DecideTx moves a pending request to its terminal state. The status guard in
// the WHERE clause makes re-deciding a terminal request a no-op, which the
// caller surfaces as ErrAlreadyDecided.
func (r *WalletRequestRepository) DecideTx(tx *gorm.DB, id uint, status, reason string) (bool, error) {
	now := time.Now()
	res := tx.Model(&models.WalletRequest{}).
		Where("id = ? AND status = ?", id, domain.StatusPending).
		Updates(map[string]interface{}{
			"status":        status,
			"reject_reason": reason,
			"decided_at":    &now,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// List returns requests filtered by type and status, newest first.
func (r *WalletRequestRepository) List(reqType, status string, page, limit int) ([]models.WalletRequest, int64, error) {
	q := r.db.Model(&models.WalletRequest{})
	if reqType != "" {
		q = q.Where("type = ?", reqType)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var total int64
	q.Count(&total)
	var list []models.WalletRequest
	err := q.Order("created_at DESC").Limit(limit).Offset((page - 1) * limit).Find(&list).Error
	return list, total, err
}

func (r *WalletRequestRepository) ListByUser(userID uint, page, limit int) ([]models.WalletRequest, int64, error) {
	q := r.db.Model(&models.WalletRequest{}).Where("user_id = ?", userID)
	var total int64
	q.Count(&total)
	var list []models.WalletRequest
	err := q.Order("created_at DESC").Limit(limit).Offset((page - 1) * limit).Find(&list).Error
	return list, total, err
}
