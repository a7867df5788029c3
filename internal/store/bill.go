package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/solvix-app/solvix-backend/internal/models"
)

type billStore struct {
	db *gorm.DB
}

func NewBillStore(db *gorm.DB) *billStore {
	return &billStore{db: db}
}

// OneShotsBetween selects the unsettled single-charge credit purchases
// dated inside the window. Installment parents and "Bill Payment" records
// never contribute to a bill.
func (s *billStore) OneShotsBetween(ctx context.Context, ownerID, from, to string) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := s.db.WithContext(ctx).
		Where("owner_id = ? AND kind = ? AND method = ?", ownerID, models.KindExpense, models.MethodCredit).
		Where("is_installment = ? AND settled = ? AND category <> ?", false, false, models.CategoryBillPayment).
		Where("date BETWEEN ? AND ?", from, to).
		Order("date, created_at").
		Find(&txs).Error
	return txs, err
}

// ChargesDueBetween selects the unpaid installment charges due inside the
// window, joined through plan to transaction to scope by owner.
func (s *billStore) ChargesDueBetween(ctx context.Context, ownerID, from, to string) ([]models.InstallmentCharge, error) {
	var charges []models.InstallmentCharge
	err := s.db.WithContext(ctx).
		Model(&models.InstallmentCharge{}).
		Joins("JOIN installment_plans ON installment_plans.plan_id = installment_charges.plan_id").
		Joins("JOIN transactions ON transactions.transaction_id = installment_plans.transaction_id").
		Where("transactions.owner_id = ? AND installment_charges.paid = ?", ownerID, false).
		Where("installment_charges.due_date BETWEEN ? AND ?", from, to).
		Order("installment_charges.due_date, installment_charges.sequence").
		Find(&charges).Error
	return charges, err
}

// Settle applies a bill payment as one atomic unit: the one-shot purchases
// flip to settled, the charges flip to paid, and the payment transaction is
// appended. A failure anywhere rolls the whole settlement back.
func (s *billStore) Settle(ctx context.Context, ownerID string, transactionIDs, chargeIDs []string, payment *models.Transaction) error {
	return s.db.WithContext(ctx).Transaction(func(dbtx *gorm.DB) error {
		if len(transactionIDs) > 0 {
			if err := dbtx.Model(&models.Transaction{}).
				Where("owner_id = ? AND transaction_id IN ?", ownerID, transactionIDs).
				Update("settled", true).Error; err != nil {
				return err
			}
		}
		if len(chargeIDs) > 0 {
			if err := dbtx.Model(&models.InstallmentCharge{}).
				Where("charge_id IN ?", chargeIDs).
				Update("paid", true).Error; err != nil {
				return err
			}
		}
		return dbtx.Create(payment).Error
	})
}
