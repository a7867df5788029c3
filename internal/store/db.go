package store

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/solvix-app/solvix-backend/internal/models"
)

// Open connects to the SQLite database at path with foreign-key
// enforcement on, so the declared cascade constraints hold at the
// database level as well as in the store code.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the five ledger tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Transaction{},
		&models.InstallmentPlan{},
		&models.InstallmentCharge{},
		&models.SavingBox{},
		&models.SavingMovement{},
	)
}
