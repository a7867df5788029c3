package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type MovementKind string

const (
	MovementDeposit  MovementKind = "deposit"
	MovementWithdraw MovementKind = "withdraw"
)

func (k MovementKind) Valid() bool {
	return k == MovementDeposit || k == MovementWithdraw
}

// SavingBox is a named savings sub-account. Its balance is never stored:
// it is always recomputed from the movement set so the ledger stays the
// single source of truth.
type SavingBox struct {
	BoxID        string          `gorm:"primaryKey" json:"boxId"`
	OwnerID      string          `gorm:"index;not null" json:"ownerId"`
	Name         string          `gorm:"not null" json:"name"`
	Description  string          `json:"description,omitempty"`
	TargetAmount decimal.Decimal `gorm:"type:DECIMAL(20,2)" json:"targetAmount"`
	Archived     bool            `json:"archived"`
	CreatedAt    time.Time       `json:"createdAt"`

	Movements []SavingMovement `gorm:"foreignKey:BoxID;constraint:OnDelete:CASCADE" json:"movements,omitempty"`
}

// Balance sums the loaded movements: deposits add, withdrawals subtract.
func (b *SavingBox) Balance() decimal.Decimal {
	balance := decimal.Zero
	for _, m := range b.Movements {
		switch m.Kind {
		case MovementDeposit:
			balance = balance.Add(m.Amount)
		case MovementWithdraw:
			balance = balance.Sub(m.Amount)
		}
	}
	return balance
}

// SavingMovement is one deposit or withdrawal against a box. Amount is
// always positive; the direction lives in Kind. TransactionID points at
// the Transaction synthesized on the main ledger for this movement and is
// cleared (not cascaded) if that transaction is deleted.
type SavingMovement struct {
	MovementID    string          `gorm:"primaryKey" json:"movementId"`
	BoxID         string          `gorm:"index;not null" json:"boxId"`
	Kind          MovementKind    `gorm:"not null" json:"kind"`
	Amount        decimal.Decimal `gorm:"type:DECIMAL(20,2);not null" json:"amount"`
	Date          string          `gorm:"not null" json:"date"` // YYYY-MM-DD
	Description   string          `json:"description,omitempty"`
	TransactionID *string         `json:"transactionId,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`

	Transaction *Transaction `gorm:"foreignKey:TransactionID;constraint:OnDelete:SET NULL" json:"-"`
}
