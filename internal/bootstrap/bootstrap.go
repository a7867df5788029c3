package bootstrap

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/solvix-app/solvix-backend/internal/config"
	"github.com/solvix-app/solvix-backend/internal/store"
	"github.com/solvix-app/solvix-backend/pkg/logger"
)

type Bootstrap struct {
	Log *slog.Logger
	DB  *gorm.DB
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	var err error
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewStdoutHandler)
	bs.DB, err = store.Open(cfg.DBPath)
	if err != nil {
		return bs, err
	}
	if err := store.Migrate(bs.DB); err != nil {
		return bs, err
	}

	return bs, nil
}
