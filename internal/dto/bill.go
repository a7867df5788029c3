package dto

import (
	"github.com/shopspring/decimal"

	"github.com/solvix-app/solvix-backend/internal/models"
)

// BillSnapshot is the computed credit-card bill for one calendar month.
// It is a pure projection: computing it mutates nothing, and calling it
// again before settlement returns the same totals and id sets.
type BillSnapshot struct {
	Year             int             `json:"year"`
	Month            int             `json:"month"`
	OneShotTotal     decimal.Decimal `json:"oneShotTotal"`
	InstallmentTotal decimal.Decimal `json:"installmentTotal"`
	GrandTotal       decimal.Decimal `json:"grandTotal"`

	// Contributing records, kept whole for display; settlement uses their ids.
	OneShots []models.Transaction       `json:"oneShots"`
	Charges  []models.InstallmentCharge `json:"charges"`
}

// TransactionIDs returns the ids of every contributing one-shot purchase.
func (b *BillSnapshot) TransactionIDs() []string {
	ids := make([]string, len(b.OneShots))
	for i, t := range b.OneShots {
		ids[i] = t.TransactionID
	}
	return ids
}

// ChargeIDs returns the ids of every contributing installment charge.
func (b *BillSnapshot) ChargeIDs() []string {
	ids := make([]string, len(b.Charges))
	for i, c := range b.Charges {
		ids[i] = c.ChargeID
	}
	return ids
}

// PayBillRequest optionally overrides the payment date (default: today).
type PayBillRequest struct {
	PaymentDate string `json:"paymentDate,omitempty"` // YYYY-MM-DD
}

// SettlementResult reports a paid bill: what was settled and the "Bill
// Payment" transaction appended to the ledger for it.
type SettlementResult struct {
	Year                int                `json:"year"`
	Month               int                `json:"month"`
	AmountPaid          decimal.Decimal    `json:"amountPaid"`
	TransactionsSettled int                `json:"transactionsSettled"`
	ChargesPaid         int                `json:"chargesPaid"`
	Payment             models.Transaction `json:"payment"`
}
