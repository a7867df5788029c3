package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/solvix-app/solvix-backend/internal/dto"
	"github.com/solvix-app/solvix-backend/internal/errs"
)

// --- Stubs ---

type stubBillService struct {
	bill       *dto.BillSnapshot
	billErr    error
	settlement *dto.SettlementResult
	payErr     error
	lastYear   int
	lastMonth  int
	lastPayReq dto.PayBillRequest
}

func (s *stubBillService) GetBill(_ context.Context, _ string, year, month int) (*dto.BillSnapshot, error) {
	s.lastYear, s.lastMonth = year, month
	return s.bill, s.billErr
}

func (s *stubBillService) PayBill(_ context.Context, _ string, year, month int, req dto.PayBillRequest) (*dto.SettlementResult, error) {
	s.lastYear, s.lastMonth = year, month
	s.lastPayReq = req
	return s.settlement, s.payErr
}

type stubSummaryService struct {
	summary *dto.MonthlySummary
	err     error
}

func (s *stubSummaryService) GetMonthlySummary(_ context.Context, _ string, year, month int) (*dto.MonthlySummary, error) {
	return s.summary, s.err
}

func billReq(t *testing.T, method, target, body string, year, month string) *http.Request {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	r = withOwner(r, "owner")
	r = withChiParam(r, "year", year)
	return withChiParam(r, "month", month)
}

// --- Tests ---

func TestGetBill_OK(t *testing.T) {
	svc := &stubBillService{bill: &dto.BillSnapshot{Year: 2025, Month: 2, GrandTotal: decimal.RequireFromString("99.90")}}
	deps := testDeps()
	deps.BillSvc = svc
	h := NewBillHandlers(deps)

	rec := httptest.NewRecorder()
	h.GetBill(rec, billReq(t, http.MethodGet, "/2025/2", "", "2025", "2"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if svc.lastYear != 2025 || svc.lastMonth != 2 {
		t.Errorf("params = %d/%d", svc.lastYear, svc.lastMonth)
	}
}

func TestGetBill_BadYearParam(t *testing.T) {
	deps := testDeps()
	deps.BillSvc = &stubBillService{}
	h := NewBillHandlers(deps)

	rec := httptest.NewRecorder()
	h.GetBill(rec, billReq(t, http.MethodGet, "/then/2", "", "then", "2"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPayBill_NothingPending(t *testing.T) {
	deps := testDeps()
	deps.BillSvc = &stubBillService{payErr: errs.NewValidationError("nothing pending to settle for this month")}
	h := NewBillHandlers(deps)

	rec := httptest.NewRecorder()
	h.PayBill(rec, billReq(t, http.MethodPost, "/2025/2/pay", "", "2025", "2"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPayBill_ForwardsPaymentDate(t *testing.T) {
	svc := &stubBillService{settlement: &dto.SettlementResult{}}
	deps := testDeps()
	deps.BillSvc = svc
	h := NewBillHandlers(deps)

	rec := httptest.NewRecorder()
	h.PayBill(rec, billReq(t, http.MethodPost, "/2025/2/pay", `{"paymentDate":"2025-03-10"}`, "2025", "2"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if svc.lastPayReq.PaymentDate != "2025-03-10" {
		t.Errorf("payment date = %q", svc.lastPayReq.PaymentDate)
	}
}

func TestGetMonthlySummary_OK(t *testing.T) {
	deps := testDeps()
	deps.SummarySvc = &stubSummaryService{summary: &dto.MonthlySummary{Year: 2025, Month: 5}}
	h := NewBillHandlers(deps)

	rec := httptest.NewRecorder()
	h.GetMonthlySummary(rec, billReq(t, http.MethodGet, "/2025/5", "", "2025", "5"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
