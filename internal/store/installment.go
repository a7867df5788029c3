package store

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/solvix-app/solvix-backend/internal/models"
)

type installmentStore struct {
	db *gorm.DB
}

func NewInstallmentStore(db *gorm.DB) *installmentStore {
	return &installmentStore{db: db}
}

// ChargeWithPlan is a charge row joined with its plan's purchase context.
type ChargeWithPlan struct {
	ChargeID    string
	Description string
	Sequence    int
	Count       int
	Amount      decimal.Decimal
	DueDate     string
}

// UnpaidAfter returns the owner's unpaid charges strictly after the given
// date, soonest first.
func (s *installmentStore) UnpaidAfter(ctx context.Context, ownerID, after string) ([]ChargeWithPlan, error) {
	var rows []ChargeWithPlan
	err := s.db.WithContext(ctx).
		Model(&models.InstallmentCharge{}).
		Select("installment_charges.charge_id, installment_plans.description, installment_charges.sequence, installment_plans.count, installment_charges.amount, installment_charges.due_date").
		Joins("JOIN installment_plans ON installment_plans.plan_id = installment_charges.plan_id").
		Joins("JOIN transactions ON transactions.transaction_id = installment_plans.transaction_id").
		Where("transactions.owner_id = ? AND installment_charges.paid = ?", ownerID, false).
		Where("installment_charges.due_date > ?", after).
		Order("installment_charges.due_date, installment_charges.sequence").
		Scan(&rows).Error
	return rows, err
}
