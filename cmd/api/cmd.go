package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/solvix-app/solvix-backend/internal/bootstrap"
	"github.com/solvix-app/solvix-backend/internal/config"
	"github.com/solvix-app/solvix-backend/internal/handlers"
	"github.com/solvix-app/solvix-backend/internal/middleware"
	"github.com/solvix-app/solvix-backend/internal/response"
	"github.com/solvix-app/solvix-backend/internal/router"
	"github.com/solvix-app/solvix-backend/internal/services"
	"github.com/solvix-app/solvix-backend/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)

	// stores
	tstore := store.NewTransactionStore(bs.DB)
	bstore := store.NewBillStore(bs.DB)
	istore := store.NewInstallmentStore(bs.DB)
	sstore := store.NewSavingsStore(bs.DB)

	// services
	tserv := services.NewTransactionService(tstore)
	bserv := services.NewBillService(bstore)
	iserv := services.NewInstallmentService(istore)
	saserv := services.NewSavingsService(sstore)
	suserv := services.NewSummaryService(tstore)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.TransactionSvc = tserv
	deps.BillSvc = bserv
	deps.InstallmentSvc = iserv
	deps.SavingsSvc = saserv
	deps.SummarySvc = suserv

	// router
	identity := middleware.NewIdentity(cfg.DefaultOwner)
	r := router.NewRouter(deps, identity)
	bs.Log.Info("listening", "port", cfg.Port)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
