package models

import "time"

// Transaction is an append-only ledger entry for a single balance-affecting
// event. Entries are immutable once created, except the status flip of pending
// wallet-request-derived entries on admin decision.
type Transaction struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	UserID uint  `gorm:"not null;index" json:"user_id"`
	Amount int64 `gorm:"not null" json:"amount"`

	Type          string `gorm:"size:20;not null;index" json:"type"`    // DEPOSIT, WITHDRAWAL, ENTRY_FEE, WINNINGS, KILL_BONUS, ADJUSTMENT
	BalanceEffect string `gorm:"size:10;not null" json:"balance_effect"` // INCREASE | DECREASE
	Status        string `gorm:"size:20;not null;index" json:"status"`  // PENDING | APPROVED | REJECTED

	// Reference links the entry to its origin: a wallet request order id or a
	// tournament id.
	Reference string    `gorm:"size:128;index" json:"reference"`
	Message   string    `gorm:"size:255" json:"message"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Transaction) TableName() string {
	return "transactions"
}
