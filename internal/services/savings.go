package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/solvix-app/solvix-backend/internal/dto"
	"github.com/solvix-app/solvix-backend/internal/errs"
	"github.com/solvix-app/solvix-backend/internal/models"
	"github.com/solvix-app/solvix-backend/pkg/dates"
	"github.com/solvix-app/solvix-backend/pkg/helpers"
)

// savingsStore is the persistence interface used by savingsService.
type savingsStore interface {
	CreateBox(ctx context.Context, box *models.SavingBox) error
	ListBoxes(ctx context.Context, ownerID string) ([]models.SavingBox, error)
	GetBox(ctx context.Context, ownerID, boxID string) (*models.SavingBox, error)
	ArchiveBox(ctx context.Context, ownerID, boxID string) error
	DeleteBox(ctx context.Context, ownerID, boxID string) error
	AddMovement(ctx context.Context, movement *models.SavingMovement, tx *models.Transaction) error
}

type savingsService struct {
	store savingsStore
	now   func() time.Time
}

func NewSavingsService(store savingsStore) *savingsService {
	return &savingsService{store: store, now: time.Now}
}

func (s *savingsService) CreateBox(ctx context.Context, ownerID string, req dto.CreateBoxRequest) (*dto.BoxView, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errs.NewValidationError("name is required")
	}

	target := decimal.Zero
	if req.TargetAmount != "" {
		var err error
		target, err = ParseAmount(req.TargetAmount)
		if err != nil {
			return nil, errs.NewValidationError("targetAmount must be a positive number")
		}
	}

	box := &models.SavingBox{
		BoxID:        uuid.New().String(),
		OwnerID:      ownerID,
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		TargetAmount: target,
		CreatedAt:    s.now(),
	}
	if err := s.store.CreateBox(ctx, box); err != nil {
		return nil, errs.NewDatabaseError("create saving box", err)
	}
	return &dto.BoxView{SavingBox: *box, Balance: decimal.Zero}, nil
}

func (s *savingsService) ListBoxes(ctx context.Context, ownerID string) ([]dto.BoxView, error) {
	boxes, err := s.store.ListBoxes(ctx, ownerID)
	if err != nil {
		return nil, errs.NewDatabaseError("list saving boxes", err)
	}
	views := make([]dto.BoxView, len(boxes))
	for i := range boxes {
		views[i] = dto.BoxView{SavingBox: boxes[i], Balance: boxes[i].Balance()}
	}
	return views, nil
}

func (s *savingsService) GetBox(ctx context.Context, ownerID, boxID string) (*dto.BoxView, error) {
	box, err := s.getBox(ctx, ownerID, boxID)
	if err != nil {
		return nil, err
	}
	return &dto.BoxView{SavingBox: *box, Balance: box.Balance()}, nil
}

func (s *savingsService) ArchiveBox(ctx context.Context, ownerID, boxID string) error {
	err := s.store.ArchiveBox(ctx, ownerID, boxID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.NewNotFoundError("saving box not found")
	default:
		return errs.NewDatabaseError("archive saving box", err)
	}
}

func (s *savingsService) DeleteBox(ctx context.Context, ownerID, boxID string) error {
	err := s.store.DeleteBox(ctx, ownerID, boxID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.NewNotFoundError("saving box not found")
	default:
		return errs.NewDatabaseError("delete saving box", err)
	}
}

// Deposit moves money from the main ledger into a box: an expense
// transaction and a deposit movement are recorded as one unit.
func (s *savingsService) Deposit(ctx context.Context, ownerID, boxID string, req dto.MovementRequest) (*dto.MovementResult, error) {
	box, amount, date, err := s.movementInputs(ctx, ownerID, boxID, req)
	if err != nil {
		return nil, err
	}

	result, err := s.applyMovement(ctx, box, models.MovementDeposit, amount, date, req.Description)
	if err != nil {
		return nil, err
	}
	result.Balance = box.Balance().Add(amount)
	return result, nil
}

// Withdraw moves money from a box back onto the main ledger as income.
// A withdrawal can never overdraw the box's derived balance.
func (s *savingsService) Withdraw(ctx context.Context, ownerID, boxID string, req dto.MovementRequest) (*dto.MovementResult, error) {
	box, amount, date, err := s.movementInputs(ctx, ownerID, boxID, req)
	if err != nil {
		return nil, err
	}
	balance := box.Balance()
	if amount.GreaterThan(balance) {
		return nil, errs.NewValidationError(fmt.Sprintf("withdrawal of %s exceeds box balance of %s",
			amount.StringFixed(2), balance.StringFixed(2)))
	}

	result, err := s.applyMovement(ctx, box, models.MovementWithdraw, amount, date, req.Description)
	if err != nil {
		return nil, err
	}
	result.Balance = balance.Sub(amount)
	return result, nil
}

func (s *savingsService) movementInputs(ctx context.Context, ownerID, boxID string, req dto.MovementRequest) (*models.SavingBox, decimal.Decimal, time.Time, error) {
	box, err := s.getBox(ctx, ownerID, boxID)
	if err != nil {
		return nil, decimal.Zero, time.Time{}, err
	}
	amount, err := ParseAmount(req.Amount)
	if err != nil {
		return nil, decimal.Zero, time.Time{}, err
	}
	date, err := ParseDate(req.Date)
	if err != nil {
		return nil, decimal.Zero, time.Time{}, err
	}
	return box, amount, date, nil
}

func (s *savingsService) applyMovement(ctx context.Context, box *models.SavingBox, kind models.MovementKind, amount decimal.Decimal, date time.Time, description string) (*dto.MovementResult, error) {
	txKind, category := models.KindExpense, models.CategoryBoxDeposit
	if kind == models.MovementWithdraw {
		txKind, category = models.KindIncome, models.CategoryBoxWithdrawal
	}
	if description == "" {
		description = fmt.Sprintf("%s %q", category, box.Name)
	}

	tx := &models.Transaction{
		TransactionID: uuid.New().String(),
		OwnerID:       box.OwnerID,
		Kind:          txKind,
		Amount:        amount,
		Category:      category,
		Description:   description,
		Date:          date.Format(dates.Layout),
		CreatedAt:     s.now(),
	}
	movement := &models.SavingMovement{
		MovementID:    uuid.New().String(),
		BoxID:         box.BoxID,
		Kind:          kind,
		Amount:        amount,
		Date:          tx.Date,
		Description:   description,
		TransactionID: helpers.Ptr(tx.TransactionID),
		CreatedAt:     s.now(),
	}
	if err := s.store.AddMovement(ctx, movement, tx); err != nil {
		return nil, errs.NewDatabaseError("record box movement", err)
	}
	return &dto.MovementResult{Movement: *movement, Transaction: *tx}, nil
}

func (s *savingsService) getBox(ctx context.Context, ownerID, boxID string) (*models.SavingBox, error) {
	box, err := s.store.GetBox(ctx, ownerID, boxID)
	switch {
	case err == nil:
		return box, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, errs.NewNotFoundError("saving box not found")
	default:
		return nil, errs.NewDatabaseError("get saving box", err)
	}
}
