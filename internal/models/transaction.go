package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

func (k TransactionKind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

type PaymentMethod string

const (
	MethodCredit PaymentMethod = "credit"
	MethodDebit  PaymentMethod = "debit"
	MethodNone   PaymentMethod = ""
)

func (m PaymentMethod) Valid() bool {
	return m == MethodCredit || m == MethodDebit || m == MethodNone
}

// Reserved categories for transactions the system synthesizes itself.
const (
	CategoryBillPayment   = "Bill Payment"
	CategoryBoxDeposit    = "Box Deposit"
	CategoryBoxWithdrawal = "Box Withdrawal"
)

type Transaction struct {
	TransactionID string          `gorm:"primaryKey" json:"transactionId"`
	OwnerID       string          `gorm:"index;not null" json:"ownerId"`
	Kind          TransactionKind `gorm:"not null" json:"kind"`
	Amount        decimal.Decimal `gorm:"type:DECIMAL(20,2);not null" json:"amount"`
	Category      string          `gorm:"not null" json:"category"`
	Description   string          `json:"description,omitempty"`
	Date          string          `gorm:"index;not null" json:"date"` // YYYY-MM-DD
	Method        PaymentMethod   `json:"method,omitempty"`
	Recurring     bool            `json:"recurring"`
	Logo          string          `json:"logo,omitempty"`
	IsInstallment bool            `json:"isInstallment"`
	// Settled is only meaningful for one-shot credit expenses; it flips to
	// true when the month's bill covering this purchase is paid.
	Settled   bool      `json:"settled"`
	CreatedAt time.Time `json:"createdAt"`

	Plan *InstallmentPlan `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE" json:"plan,omitempty"`
}
