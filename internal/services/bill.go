package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/solvix-app/solvix-backend/internal/dto"
	"github.com/solvix-app/solvix-backend/internal/errs"
	"github.com/solvix-app/solvix-backend/internal/models"
	"github.com/solvix-app/solvix-backend/pkg/dates"
)

// billStore is the persistence interface used by billService.
type billStore interface {
	OneShotsBetween(ctx context.Context, ownerID, from, to string) ([]models.Transaction, error)
	ChargesDueBetween(ctx context.Context, ownerID, from, to string) ([]models.InstallmentCharge, error)
	Settle(ctx context.Context, ownerID string, transactionIDs, chargeIDs []string, payment *models.Transaction) error
}

type billService struct {
	store billStore
	now   func() time.Time
}

func NewBillService(store billStore) *billService {
	return &billService{store: store, now: time.Now}
}

// GetBill computes the credit-card bill for one month: the unsettled
// one-shot credit purchases dated in it plus the unpaid installment
// charges due in it. Reading a bill changes nothing; it can be previewed
// any number of times before paying.
func (s *billService) GetBill(ctx context.Context, ownerID string, year, month int) (*dto.BillSnapshot, error) {
	if err := validateYearMonth(year, month); err != nil {
		return nil, err
	}
	first, last := dates.MonthBounds(year, month)
	from, to := first.Format(dates.Layout), last.Format(dates.Layout)

	oneShots, err := s.store.OneShotsBetween(ctx, ownerID, from, to)
	if err != nil {
		return nil, errs.NewDatabaseError("select bill purchases", err)
	}
	charges, err := s.store.ChargesDueBetween(ctx, ownerID, from, to)
	if err != nil {
		return nil, errs.NewDatabaseError("select bill charges", err)
	}

	oneShotTotal := decimal.Zero
	for _, tx := range oneShots {
		oneShotTotal = oneShotTotal.Add(tx.Amount)
	}
	installmentTotal := decimal.Zero
	for _, c := range charges {
		installmentTotal = installmentTotal.Add(c.Amount)
	}

	return &dto.BillSnapshot{
		Year:             year,
		Month:            month,
		OneShotTotal:     oneShotTotal,
		InstallmentTotal: installmentTotal,
		GrandTotal:       oneShotTotal.Add(installmentTotal),
		OneShots:         oneShots,
		Charges:          charges,
	}, nil
}

// PayBill settles the month's bill: every purchase and charge in the
// freshly recomputed snapshot is flagged, and one "Bill Payment" debit
// expense for the grand total is appended to the ledger. The three effects
// commit atomically. There is no unpay.
func (s *billService) PayBill(ctx context.Context, ownerID string, year, month int, req dto.PayBillRequest) (*dto.SettlementResult, error) {
	bill, err := s.GetBill(ctx, ownerID, year, month)
	if err != nil {
		return nil, err
	}
	if bill.GrandTotal.Sign() <= 0 {
		return nil, errs.NewValidationError("nothing pending to settle for this month")
	}

	payDate := dates.Civil(s.now())
	if req.PaymentDate != "" {
		payDate, err = ParseDate(req.PaymentDate)
		if err != nil {
			return nil, err
		}
	}

	payment := &models.Transaction{
		TransactionID: uuid.New().String(),
		OwnerID:       ownerID,
		Kind:          models.KindExpense,
		Amount:        bill.GrandTotal,
		Category:      models.CategoryBillPayment,
		Description:   fmt.Sprintf("Credit card bill %02d/%d", month, year),
		Date:          payDate.Format(dates.Layout),
		Method:        models.MethodDebit,
		Settled:       true,
		CreatedAt:     s.now(),
	}

	txIDs, chargeIDs := bill.TransactionIDs(), bill.ChargeIDs()
	if err := s.store.Settle(ctx, ownerID, txIDs, chargeIDs, payment); err != nil {
		return nil, errs.NewDatabaseError("settle bill", err)
	}

	return &dto.SettlementResult{
		Year:                year,
		Month:               month,
		AmountPaid:          bill.GrandTotal,
		TransactionsSettled: len(txIDs),
		ChargesPaid:         len(chargeIDs),
		Payment:             *payment,
	}, nil
}

func validateYearMonth(year, month int) error {
	if year < 1 {
		return errs.NewValidationError("year must be a positive calendar year")
	}
	if month < 1 || month > 12 {
		return errs.NewValidationError("month must be between 1 and 12")
	}
	return nil
}
