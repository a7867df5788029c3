package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/solvix-app/solvix-backend/internal/dto"
	"github.com/solvix-app/solvix-backend/internal/errs"
	"github.com/solvix-app/solvix-backend/internal/middleware"
	"github.com/solvix-app/solvix-backend/internal/response"
)

type SavingsService interface {
	CreateBox(ctx context.Context, ownerID string, req dto.CreateBoxRequest) (*dto.BoxView, error)
	ListBoxes(ctx context.Context, ownerID string) ([]dto.BoxView, error)
	GetBox(ctx context.Context, ownerID, boxID string) (*dto.BoxView, error)
	ArchiveBox(ctx context.Context, ownerID, boxID string) error
	DeleteBox(ctx context.Context, ownerID, boxID string) error
	Deposit(ctx context.Context, ownerID, boxID string, req dto.MovementRequest) (*dto.MovementResult, error)
	Withdraw(ctx context.Context, ownerID, boxID string, req dto.MovementRequest) (*dto.MovementResult, error)
}

type savingsHandlers struct {
	ResponseHandler response.ResponseHandler
	SavingsSvc      SavingsService
}

func NewSavingsHandlers(deps *Deps) *savingsHandlers {
	return &savingsHandlers{
		ResponseHandler: deps.ResponseHandler,
		SavingsSvc:      deps.SavingsSvc,
	}
}

func (h *savingsHandlers) BoxRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListBoxes)
	r.Post("/", h.CreateBox)
	r.Get("/{boxId}", h.GetBox)
	r.Delete("/{boxId}", h.DeleteBox)
	r.Post("/{boxId}/archive", h.ArchiveBox)
	r.Post("/{boxId}/deposit", h.Deposit)
	r.Post("/{boxId}/withdraw", h.Withdraw)
	return r
}

func (h *savingsHandlers) ListBoxes(w http.ResponseWriter, r *http.Request) {
	owner := middleware.Owner(r.Context())
	boxes, err := h.SavingsSvc.ListBoxes(r.Context(), owner)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, boxes)
}

func (h *savingsHandlers) CreateBox(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBoxRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid JSON body"))
		return
	}
	owner := middleware.Owner(r.Context())
	box, err := h.SavingsSvc.CreateBox(r.Context(), owner, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, box)
}

func (h *savingsHandlers) GetBox(w http.ResponseWriter, r *http.Request) {
	boxID := chi.URLParam(r, "boxId")
	owner := middleware.Owner(r.Context())
	box, err := h.SavingsSvc.GetBox(r.Context(), owner, boxID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, box)
}

func (h *savingsHandlers) ArchiveBox(w http.ResponseWriter, r *http.Request) {
	boxID := chi.URLParam(r, "boxId")
	owner := middleware.Owner(r.Context())
	if err := h.SavingsSvc.ArchiveBox(r.Context(), owner, boxID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *savingsHandlers) DeleteBox(w http.ResponseWriter, r *http.Request) {
	boxID := chi.URLParam(r, "boxId")
	owner := middleware.Owner(r.Context())
	if err := h.SavingsSvc.DeleteBox(r.Context(), owner, boxID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *savingsHandlers) Deposit(w http.ResponseWriter, r *http.Request) {
	h.applyMovement(w, r, h.SavingsSvc.Deposit)
}

func (h *savingsHandlers) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.applyMovement(w, r, h.SavingsSvc.Withdraw)
}

func (h *savingsHandlers) applyMovement(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context, ownerID, boxID string, req dto.MovementRequest) (*dto.MovementResult, error)) {
	boxID := chi.URLParam(r, "boxId")
	var req dto.MovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid JSON body"))
		return
	}
	owner := middleware.Owner(r.Context())
	result, err := apply(r.Context(), owner, boxID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, result)
}
