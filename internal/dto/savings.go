package dto

import (
	"github.com/shopspring/decimal"

	"github.com/solvix-app/solvix-backend/internal/models"
)

type CreateBoxRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	TargetAmount string `json:"targetAmount,omitempty"`
}

// MovementRequest is a deposit into or withdrawal from a box.
type MovementRequest struct {
	Amount      string `json:"amount"`
	Date        string `json:"date"` // YYYY-MM-DD
	Description string `json:"description,omitempty"`
}

// BoxView is a box with its derived balance attached.
type BoxView struct {
	models.SavingBox
	Balance decimal.Decimal `json:"balance"`
}

// MovementResult reports a completed deposit or withdrawal: the movement,
// the transaction it synthesized on the main ledger, and the box's balance
// afterwards.
type MovementResult struct {
	Movement    models.SavingMovement `json:"movement"`
	Transaction models.Transaction    `json:"transaction"`
	Balance     decimal.Decimal       `json:"balance"`
}
