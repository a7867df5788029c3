package dto

// CreateTransactionRequest carries a new ledger entry. Amount arrives as a
// string so both "1234.56" and the comma decimal separator "1234,56" are
// accepted.
type CreateTransactionRequest struct {
	Kind        string `json:"kind"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Date        string `json:"date"` // YYYY-MM-DD
	Description string `json:"description,omitempty"`
	Method      string `json:"method,omitempty"`
	Recurring   bool   `json:"recurring,omitempty"`
	Logo        string `json:"logo,omitempty"`

	Installment *InstallmentRequest `json:"installment,omitempty"`
}

// InstallmentRequest is the parceling sub-structure of a credit purchase.
type InstallmentRequest struct {
	Mode         string `json:"mode"` // "total" or "per_installment"
	Count        int    `json:"count"`
	InterestRate string `json:"interestRate,omitempty"`
	FirstDueDate string `json:"firstDueDate,omitempty"` // defaults to the purchase date
}
