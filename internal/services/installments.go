package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/solvix-app/solvix-backend/internal/models"
	"github.com/solvix-app/solvix-backend/pkg/dates"
)

// PlanSpec is the scheduler input for one parceled purchase. The caller
// has already validated it: credit payment method, count of at least 2,
// positive amount.
type PlanSpec struct {
	Description  string
	Amount       decimal.Decimal
	Count        int
	Mode         models.InstallmentMode
	InterestRate decimal.Decimal
	FirstDue     time.Time
}

// SplitTotal divides a total into count two-decimal charge amounts. Every
// charge gets the rounded base; the last charge absorbs the rounding
// residue so the amounts sum back to the total exactly. For 100.00 over 3
// the base is 33.33 and the last charge 33.34.
func SplitTotal(total decimal.Decimal, count int) (base, last decimal.Decimal) {
	n := decimal.NewFromInt(int64(count))
	base = total.DivRound(n, 2)
	last = base.Add(total.Sub(base.Mul(n)))
	return base, last
}

// BuildPlan expands a purchase into its installment plan and scheduled
// charges. Charge i is due i calendar months after the first due date, so
// the parcels land one per month.
func BuildPlan(transactionID string, spec PlanSpec) (*models.InstallmentPlan, []models.InstallmentCharge) {
	var total, base, last decimal.Decimal
	switch spec.Mode {
	case models.ModePerInstallment:
		base = spec.Amount
		last = spec.Amount
		total = spec.Amount.Mul(decimal.NewFromInt(int64(spec.Count)))
	default: // models.ModeTotal
		total = spec.Amount
		base, last = SplitTotal(total, spec.Count)
	}

	plan := &models.InstallmentPlan{
		PlanID:        uuid.New().String(),
		TransactionID: transactionID,
		Description:   spec.Description,
		TotalAmount:   total,
		Count:         spec.Count,
		Mode:          spec.Mode,
		InterestRate:  spec.InterestRate,
		FirstDueDate:  spec.FirstDue.Format(dates.Layout),
	}

	charges := make([]models.InstallmentCharge, spec.Count)
	for i := 0; i < spec.Count; i++ {
		amount := base
		if i == spec.Count-1 {
			amount = last
		}
		charges[i] = models.InstallmentCharge{
			ChargeID: uuid.New().String(),
			PlanID:   plan.PlanID,
			Sequence: i + 1,
			Amount:   amount,
			DueDate:  dates.AddMonths(spec.FirstDue, i).Format(dates.Layout),
		}
	}
	return plan, charges
}
