package models

import "time"

// WalletRequest is a user-initiated deposit or withdrawal awaiting admin
// decision. PENDING -> APPROVED | REJECTED, terminal once decided; never
// deleted.
type WalletRequest struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	Type    string `gorm:"size:20;not null;index" json:"type"` // DEPOSIT | WITHDRAWAL
	OrderID string `gorm:"size:64;uniqueIndex;not null" json:"order_id"`
	Amount  int64  `gorm:"not null" json:"amount"`

	// UpiID is the payment source for deposits and the destination for
	// withdrawals. ExternalTxnID is the externally confirmed payment reference
	// supplied with a deposit; the system records it, it does not settle it.
	UpiID         string `gorm:"size:128" json:"upi_id"`
	ExternalTxnID string `gorm:"size:128" json:"external_txn_id,omitempty"`

	Status       string     `gorm:"size:20;not null;index" json:"status"` // PENDING | APPROVED | REJECTED
	RejectReason string     `gorm:"size:255" json:"reject_reason,omitempty"`
	DecidedAt    *time.Time `json:"decided_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (WalletRequest) TableName() string {
	return "wallet_requests"
}
