package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/solvix-app/solvix-backend/internal/dto"
	"github.com/solvix-app/solvix-backend/internal/errs"
	"github.com/solvix-app/solvix-backend/internal/models"
	"github.com/solvix-app/solvix-backend/pkg/dates"
)

// summaryStore is the persistence interface used by summaryService.
type summaryStore interface {
	SumKindBetween(ctx context.Context, ownerID string, kind models.TransactionKind, from, to string) (decimal.Decimal, error)
}

type summaryService struct {
	store summaryStore
}

func NewSummaryService(store summaryStore) *summaryService {
	return &summaryService{store: store}
}

// GetMonthlySummary totals the owner's income and expenses for one month.
func (s *summaryService) GetMonthlySummary(ctx context.Context, ownerID string, year, month int) (*dto.MonthlySummary, error) {
	if err := validateYearMonth(year, month); err != nil {
		return nil, err
	}
	first, last := dates.MonthBounds(year, month)
	from, to := first.Format(dates.Layout), last.Format(dates.Layout)

	income, err := s.store.SumKindBetween(ctx, ownerID, models.KindIncome, from, to)
	if err != nil {
		return nil, errs.NewDatabaseError("sum income", err)
	}
	expense, err := s.store.SumKindBetween(ctx, ownerID, models.KindExpense, from, to)
	if err != nil {
		return nil, errs.NewDatabaseError("sum expenses", err)
	}

	return &dto.MonthlySummary{
		Year:    year,
		Month:   month,
		Income:  income,
		Expense: expense,
		Net:     income.Sub(expense),
	}, nil
}
