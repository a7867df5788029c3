package handlers

import (
	"log/slog"

	"github.com/solvix-app/solvix-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	TransactionSvc  TransactionService
	BillSvc         BillService
	InstallmentSvc  InstallmentService
	SavingsSvc      SavingsService
	SummarySvc      SummaryService
}
