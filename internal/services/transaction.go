package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/solvix-app/solvix-backend/internal/dto"
	"github.com/solvix-app/solvix-backend/internal/errs"
	"github.com/solvix-app/solvix-backend/internal/models"
	"github.com/solvix-app/solvix-backend/pkg/dates"
)

// transactionStore is the persistence interface used by transactionService.
type transactionStore interface {
	Create(ctx context.Context, tx *models.Transaction) error
	CreateWithPlan(ctx context.Context, tx *models.Transaction, plan *models.InstallmentPlan, charges []models.InstallmentCharge) error
	List(ctx context.Context, ownerID string) ([]models.Transaction, error)
	Get(ctx context.Context, ownerID, transactionID string) (*models.Transaction, error)
	Delete(ctx context.Context, ownerID, transactionID string) error
}

type transactionService struct {
	store transactionStore
	now   func() time.Time
}

func NewTransactionService(store transactionStore) *transactionService {
	return &transactionService{store: store, now: time.Now}
}

func (s *transactionService) List(ctx context.Context, ownerID string) ([]models.Transaction, error) {
	txs, err := s.store.List(ctx, ownerID)
	if err != nil {
		return nil, errs.NewDatabaseError("list transactions", err)
	}
	return txs, nil
}

func (s *transactionService) Create(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*models.Transaction, error) {
	kind := models.TransactionKind(req.Kind)
	if !kind.Valid() {
		return nil, errs.NewValidationError(`kind must be "income" or "expense"`)
	}
	amount, err := ParseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Category) == "" {
		return nil, errs.NewValidationError("category is required")
	}
	date, err := ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	method := models.PaymentMethod(req.Method)
	if !method.Valid() {
		return nil, errs.NewValidationError(`method must be "credit", "debit" or empty`)
	}

	tx := &models.Transaction{
		TransactionID: uuid.New().String(),
		OwnerID:       ownerID,
		Kind:          kind,
		Amount:        amount,
		Category:      req.Category,
		Description:   req.Description,
		Date:          date.Format(dates.Layout),
		Method:        method,
		Recurring:     req.Recurring,
		Logo:          req.Logo,
		CreatedAt:     s.now(),
	}

	if req.Installment == nil {
		if err := s.store.Create(ctx, tx); err != nil {
			return nil, errs.NewDatabaseError("create transaction", err)
		}
		return tx, nil
	}

	spec, err := s.installmentSpec(tx, req)
	if err != nil {
		return nil, err
	}
	plan, charges := BuildPlan(tx.TransactionID, spec)
	tx.IsInstallment = true
	tx.Amount = plan.TotalAmount
	tx.Plan = nil // persisted alongside, not through the association

	if err := s.store.CreateWithPlan(ctx, tx, plan, charges); err != nil {
		return nil, errs.NewDatabaseError("create installment purchase", err)
	}
	tx.Plan = plan
	tx.Plan.Charges = charges
	return tx, nil
}

func (s *transactionService) installmentSpec(tx *models.Transaction, req dto.CreateTransactionRequest) (PlanSpec, error) {
	inst := req.Installment
	if tx.Kind != models.KindExpense {
		return PlanSpec{}, errs.NewValidationError("installment purchases must be expenses")
	}
	if tx.Method != models.MethodCredit {
		return PlanSpec{}, errs.NewValidationError("installment purchases require the credit payment method")
	}
	if inst.Count < 2 {
		return PlanSpec{}, errs.NewValidationError("installment count must be at least 2")
	}
	mode := models.InstallmentMode(inst.Mode)
	if !mode.Valid() {
		return PlanSpec{}, errs.NewValidationError(`installment mode must be "total" or "per_installment"`)
	}

	rate := decimal.Zero
	if inst.InterestRate != "" {
		var err error
		rate, err = ParseAmount(inst.InterestRate)
		if err != nil {
			return PlanSpec{}, errs.NewValidationError("interestRate must be a valid number")
		}
	}

	firstDue, err := ParseDate(tx.Date)
	if err != nil {
		return PlanSpec{}, err
	}
	if inst.FirstDueDate != "" {
		firstDue, err = ParseDate(inst.FirstDueDate)
		if err != nil {
			return PlanSpec{}, err
		}
	}

	return PlanSpec{
		Description:  req.Description,
		Amount:       tx.Amount,
		Count:        inst.Count,
		Mode:         mode,
		InterestRate: rate,
		FirstDue:     firstDue,
	}, nil
}

func (s *transactionService) Delete(ctx context.Context, ownerID, transactionID string) error {
	err := s.store.Delete(ctx, ownerID, transactionID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.NewNotFoundError("transaction not found")
	default:
		return errs.NewDatabaseError("delete transaction", err)
	}
}

// ParseAmount parses a positive monetary amount, accepting both "." and
// "," as the decimal separator.
func ParseAmount(raw string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if normalized == "" {
		return decimal.Zero, errs.NewValidationError("amount is required")
	}
	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, errs.NewValidationError("amount must be a valid number")
	}
	if amount.Sign() <= 0 {
		return decimal.Zero, errs.NewValidationError("amount must be positive")
	}
	return amount, nil
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(raw string) (time.Time, error) {
	t, err := time.ParseInLocation(dates.Layout, strings.TrimSpace(raw), time.UTC)
	if err != nil {
		return time.Time{}, errs.NewValidationError("date must use the YYYY-MM-DD format")
	}
	return t, nil
}
