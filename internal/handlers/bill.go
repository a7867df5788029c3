package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/solvix-app/solvix-backend/internal/dto"
	"github.com/solvix-app/solvix-backend/internal/errs"
	"github.com/solvix-app/solvix-backend/internal/middleware"
	"github.com/solvix-app/solvix-backend/internal/response"
)

type BillService interface {
	GetBill(ctx context.Context, ownerID string, year, month int) (*dto.BillSnapshot, error)
	PayBill(ctx context.Context, ownerID string, year, month int, req dto.PayBillRequest) (*dto.SettlementResult, error)
}

type SummaryService interface {
	GetMonthlySummary(ctx context.Context, ownerID string, year, month int) (*dto.MonthlySummary, error)
}

type billHandlers struct {
	ResponseHandler response.ResponseHandler
	BillSvc         BillService
	SummarySvc      SummaryService
}

func NewBillHandlers(deps *Deps) *billHandlers {
	return &billHandlers{
		ResponseHandler: deps.ResponseHandler,
		BillSvc:         deps.BillSvc,
		SummarySvc:      deps.SummarySvc,
	}
}

func (h *billHandlers) BillRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{year}/{month}", h.GetBill)
	r.Post("/{year}/{month}/pay", h.PayBill)
	return r
}

func (h *billHandlers) SummaryRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{year}/{month}", h.GetMonthlySummary)
	return r
}

func (h *billHandlers) GetBill(w http.ResponseWriter, r *http.Request) {
	year, month, err := yearMonthParams(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	owner := middleware.Owner(r.Context())
	bill, err := h.BillSvc.GetBill(r.Context(), owner, year, month)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, bill)
}

func (h *billHandlers) PayBill(w http.ResponseWriter, r *http.Request) {
	year, month, err := yearMonthParams(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	// Body is optional; an empty body means "pay dated today".
	var req dto.PayBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid JSON body"))
		return
	}

	owner := middleware.Owner(r.Context())
	result, err := h.BillSvc.PayBill(r.Context(), owner, year, month, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

func (h *billHandlers) GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	year, month, err := yearMonthParams(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	owner := middleware.Owner(r.Context())
	summary, err := h.SummarySvc.GetMonthlySummary(r.Context(), owner, year, month)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, summary)
}

func yearMonthParams(r *http.Request) (year, month int, err error) {
	year, err = strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		return 0, 0, errs.NewValidationError("year must be a number")
	}
	month, err = strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		return 0, 0, errs.NewValidationError("month must be a number")
	}
	return year, month, nil
}
