package dto

import (
	"github.com/shopspring/decimal"
)

// UpcomingChargeItem is one future installment charge with its purchase
// context joined in from the plan.
type UpcomingChargeItem struct {
	ChargeID    string          `json:"chargeId"`
	Description string          `json:"description,omitempty"`
	Sequence    int             `json:"sequence"`
	Count       int             `json:"count"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     string          `json:"dueDate"`
}

// UpcomingMonthGroup collects the unpaid charges due in one future month.
type UpcomingMonthGroup struct {
	Month   string               `json:"month"` // YYYY-MM
	Total   decimal.Decimal      `json:"total"`
	Charges []UpcomingChargeItem `json:"charges"`
}
