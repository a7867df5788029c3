package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/solvix-app/solvix-backend/internal/models"
)

type savingsStore struct {
	db *gorm.DB
}

func NewSavingsStore(db *gorm.DB) *savingsStore {
	return &savingsStore{db: db}
}

func (s *savingsStore) CreateBox(ctx context.Context, box *models.SavingBox) error {
	return s.db.WithContext(ctx).Create(box).Error
}

// ListBoxes returns the owner's active boxes with movements preloaded so
// balances can be derived. Archived boxes are excluded.
func (s *savingsStore) ListBoxes(ctx context.Context, ownerID string) ([]models.SavingBox, error) {
	var boxes []models.SavingBox
	err := s.db.WithContext(ctx).
		Preload("Movements").
		Where("owner_id = ? AND archived = ?", ownerID, false).
		Order("created_at").
		Find(&boxes).Error
	return boxes, err
}

func (s *savingsStore) GetBox(ctx context.Context, ownerID, boxID string) (*models.SavingBox, error) {
	var box models.SavingBox
	err := s.db.WithContext(ctx).
		Preload("Movements").
		Where("owner_id = ? AND box_id = ?", ownerID, boxID).
		First(&box).Error
	if err != nil {
		return nil, err
	}
	return &box, nil
}

func (s *savingsStore) ArchiveBox(ctx context.Context, ownerID, boxID string) error {
	result := s.db.WithContext(ctx).
		Model(&models.SavingBox{}).
		Where("owner_id = ? AND box_id = ?", ownerID, boxID).
		Update("archived", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteBox removes a box and its movements in one unit. Transactions the
// movements synthesized on the main ledger stay in place.
func (s *savingsStore) DeleteBox(ctx context.Context, ownerID, boxID string) error {
	return s.db.WithContext(ctx).Transaction(func(dbtx *gorm.DB) error {
		var box models.SavingBox
		if err := dbtx.Where("owner_id = ? AND box_id = ?", ownerID, boxID).First(&box).Error; err != nil {
			return err
		}
		if err := dbtx.Where("box_id = ?", boxID).Delete(&models.SavingMovement{}).Error; err != nil {
			return err
		}
		return dbtx.Delete(&box).Error
	})
}

// AddMovement persists a movement and the transaction synthesized for it
// on the main ledger together or not at all.
func (s *savingsStore) AddMovement(ctx context.Context, movement *models.SavingMovement, tx *models.Transaction) error {
	return s.db.WithContext(ctx).Transaction(func(dbtx *gorm.DB) error {
		if err := dbtx.Create(tx).Error; err != nil {
			return err
		}
		return dbtx.Create(movement).Error
	})
}
