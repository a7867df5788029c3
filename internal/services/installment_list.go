package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/solvix-app/solvix-backend/internal/dto"
	"github.com/solvix-app/solvix-backend/internal/errs"
	"github.com/solvix-app/solvix-backend/internal/store"
	"github.com/solvix-app/solvix-backend/pkg/dates"
)

// installmentStore is the persistence interface used by installmentService.
type installmentStore interface {
	UnpaidAfter(ctx context.Context, ownerID, after string) ([]store.ChargeWithPlan, error)
}

type installmentService struct {
	store installmentStore
	now   func() time.Time
}

func NewInstallmentService(store installmentStore) *installmentService {
	return &installmentService{store: store, now: time.Now}
}

// Upcoming returns the owner's unpaid charges due after today, grouped by
// calendar month in ascending order.
func (s *installmentService) Upcoming(ctx context.Context, ownerID string) ([]dto.UpcomingMonthGroup, error) {
	today := dates.Civil(s.now()).Format(dates.Layout)
	rows, err := s.store.UnpaidAfter(ctx, ownerID, today)
	if err != nil {
		return nil, errs.NewDatabaseError("list upcoming installments", err)
	}

	// Rows arrive sorted by due date, so months form contiguous runs.
	groups := []dto.UpcomingMonthGroup{}
	for _, row := range rows {
		due, err := ParseDate(row.DueDate)
		if err != nil {
			return nil, err
		}
		key := dates.YearMonthKey(due)
		if len(groups) == 0 || groups[len(groups)-1].Month != key {
			groups = append(groups, dto.UpcomingMonthGroup{Month: key, Total: decimal.Zero})
		}
		g := &groups[len(groups)-1]
		g.Total = g.Total.Add(row.Amount)
		g.Charges = append(g.Charges, dto.UpcomingChargeItem{
			ChargeID:    row.ChargeID,
			Description: row.Description,
			Sequence:    row.Sequence,
			Count:       row.Count,
			Amount:      row.Amount,
			DueDate:     row.DueDate,
		})
	}
	return groups, nil
}
