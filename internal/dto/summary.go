package dto

import (
	"github.com/shopspring/decimal"
)

// MonthlySummary totals one calendar month of the main ledger.
type MonthlySummary struct {
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}
