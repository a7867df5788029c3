package store

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/solvix-app/solvix-backend/internal/models"
)

type transactionStore struct {
	db *gorm.DB
}

func NewTransactionStore(db *gorm.DB) *transactionStore {
	return &transactionStore{db: db}
}

func (s *transactionStore) Create(ctx context.Context, tx *models.Transaction) error {
	return s.db.WithContext(ctx).Create(tx).Error
}

// CreateWithPlan persists a parceled purchase: the transaction, its plan
// and every scheduled charge commit together or not at all.
func (s *transactionStore) CreateWithPlan(ctx context.Context, tx *models.Transaction, plan *models.InstallmentPlan, charges []models.InstallmentCharge) error {
	return s.db.WithContext(ctx).Transaction(func(dbtx *gorm.DB) error {
		if err := dbtx.Create(tx).Error; err != nil {
			return err
		}
		if err := dbtx.Create(plan).Error; err != nil {
			return err
		}
		return dbtx.Create(&charges).Error
	})
}

// List returns the owner's transactions, most recent date first.
func (s *transactionStore) List(ctx context.Context, ownerID string) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("date DESC, created_at DESC").
		Find(&txs).Error
	return txs, err
}

func (s *transactionStore) Get(ctx context.Context, ownerID, transactionID string) (*models.Transaction, error) {
	var tx models.Transaction
	err := s.db.WithContext(ctx).
		Where("owner_id = ? AND transaction_id = ?", ownerID, transactionID).
		First(&tx).Error
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// Delete removes a transaction and, in the same unit, its installment plan
// and charges. Savings movements pointing at it keep their history; only
// the back-reference is cleared.
func (s *transactionStore) Delete(ctx context.Context, ownerID, transactionID string) error {
	return s.db.WithContext(ctx).Transaction(func(dbtx *gorm.DB) error {
		var tx models.Transaction
		if err := dbtx.Where("owner_id = ? AND transaction_id = ?", ownerID, transactionID).First(&tx).Error; err != nil {
			return err
		}

		var plan models.InstallmentPlan
		err := dbtx.Where("transaction_id = ?", transactionID).First(&plan).Error
		switch {
		case err == nil:
			if err := dbtx.Where("plan_id = ?", plan.PlanID).Delete(&models.InstallmentCharge{}).Error; err != nil {
				return err
			}
			if err := dbtx.Delete(&plan).Error; err != nil {
				return err
			}
		case err != gorm.ErrRecordNotFound:
			return err
		}

		if err := dbtx.Model(&models.SavingMovement{}).
			Where("transaction_id = ?", transactionID).
			Update("transaction_id", nil).Error; err != nil {
			return err
		}

		return dbtx.Delete(&tx).Error
	})
}

// SumKindBetween totals a transaction kind over a date window, inclusive.
func (s *transactionStore) SumKindBetween(ctx context.Context, ownerID string, kind models.TransactionKind, from, to string) (decimal.Decimal, error) {
	var txs []models.Transaction
	err := s.db.WithContext(ctx).
		Where("owner_id = ? AND kind = ? AND date BETWEEN ? AND ?", ownerID, kind, from, to).
		Find(&txs).Error
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Amount)
	}
	return total, nil
}
