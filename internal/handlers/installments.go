package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/solvix-app/solvix-backend/internal/dto"
	"github.com/solvix-app/solvix-backend/internal/middleware"
	"github.com/solvix-app/solvix-backend/internal/response"
)

type InstallmentService interface {
	Upcoming(ctx context.Context, ownerID string) ([]dto.UpcomingMonthGroup, error)
}

type installmentHandlers struct {
	ResponseHandler response.ResponseHandler
	InstallmentSvc  InstallmentService
}

func NewInstallmentHandlers(deps *Deps) *installmentHandlers {
	return &installmentHandlers{
		ResponseHandler: deps.ResponseHandler,
		InstallmentSvc:  deps.InstallmentSvc,
	}
}

func (h *installmentHandlers) InstallmentRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/upcoming", h.ListUpcoming)
	return r
}

func (h *installmentHandlers) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	owner := middleware.Owner(r.Context())
	groups, err := h.InstallmentSvc.Upcoming(r.Context(), owner)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, groups)
}
