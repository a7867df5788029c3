package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/solvix-app/solvix-backend/internal/dto"
	"github.com/solvix-app/solvix-backend/internal/errs"
	"github.com/solvix-app/solvix-backend/internal/middleware"
	"github.com/solvix-app/solvix-backend/internal/models"
	"github.com/solvix-app/solvix-backend/internal/response"
)

type TransactionService interface {
	List(ctx context.Context, ownerID string) ([]models.Transaction, error)
	Create(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*models.Transaction, error)
	Delete(ctx context.Context, ownerID, transactionID string) error
}

type transactionHandlers struct {
	ResponseHandler response.ResponseHandler
	TransactionSvc  TransactionService
}

func NewTransactionHandlers(deps *Deps) *transactionHandlers {
	return &transactionHandlers{
		ResponseHandler: deps.ResponseHandler,
		TransactionSvc:  deps.TransactionSvc,
	}
}

func (h *transactionHandlers) TransactionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListTransactions)
	r.Post("/", h.CreateTransaction)
	r.Delete("/{transactionId}", h.DeleteTransaction)
	return r
}

func (h *transactionHandlers) ListTransactions(w http.ResponseWriter, r *http.Request) {
	owner := middleware.Owner(r.Context())
	txs, err := h.TransactionSvc.List(r.Context(), owner)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, txs)
}

func (h *transactionHandlers) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid JSON body"))
		return
	}
	owner := middleware.Owner(r.Context())
	tx, err := h.TransactionSvc.Create(r.Context(), owner, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, tx)
}

func (h *transactionHandlers) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionId")
	owner := middleware.Owner(r.Context())
	if err := h.TransactionSvc.Delete(r.Context(), owner, transactionID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
