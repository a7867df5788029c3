package models

import (
	"github.com/shopspring/decimal"
)

// InstallmentMode records how the user expressed the purchase amount:
// the total price of the purchase, or the price of each installment.
type InstallmentMode string

const (
	ModeTotal          InstallmentMode = "total"
	ModePerInstallment InstallmentMode = "per_installment"
)

func (m InstallmentMode) Valid() bool {
	return m == ModeTotal || m == ModePerInstallment
}

// InstallmentPlan is the parceling summary for one credit purchase. It is
// created atomically with its parent Transaction and removed by cascade
// when the parent is deleted.
type InstallmentPlan struct {
	PlanID        string          `gorm:"primaryKey" json:"planId"`
	TransactionID string          `gorm:"uniqueIndex;not null" json:"transactionId"`
	Description   string          `json:"description,omitempty"`
	TotalAmount   decimal.Decimal `gorm:"type:DECIMAL(20,2);not null" json:"totalAmount"`
	Count         int             `gorm:"not null" json:"count"`
	Mode          InstallmentMode `gorm:"not null" json:"mode"`
	// InterestRate is a flat monthly percentage kept for display only; it
	// never enters the charge amount computation.
	InterestRate decimal.Decimal `gorm:"type:DECIMAL(20,2)" json:"interestRate"`
	FirstDueDate string          `gorm:"not null" json:"firstDueDate"` // YYYY-MM-DD

	Charges []InstallmentCharge `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE" json:"charges,omitempty"`
}

// InstallmentCharge is one scheduled payment of a plan. Sequence is 1-based
// and contiguous up to the plan's count; the sum of a plan's charge amounts
// equals the plan total exactly.
type InstallmentCharge struct {
	ChargeID string          `gorm:"primaryKey" json:"chargeId"`
	PlanID   string          `gorm:"index;not null" json:"planId"`
	Sequence int             `gorm:"not null" json:"sequence"`
	Amount   decimal.Decimal `gorm:"type:DECIMAL(20,2);not null" json:"amount"`
	DueDate  string          `gorm:"index;not null" json:"dueDate"` // YYYY-MM-DD
	Paid     bool            `json:"paid"`
}
