package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/solvix-app/solvix-backend/internal/dto"
	"github.com/solvix-app/solvix-backend/internal/errs"
	"github.com/solvix-app/solvix-backend/internal/models"
)

// --- Fakes ---

type fakeSavingsStore struct {
	boxes        map[string]*models.SavingBox
	createErr    error
	movementErr  error
	lastMovement *models.SavingMovement
	lastTx       *models.Transaction
}

func newFakeSavingsStore() *fakeSavingsStore {
	return &fakeSavingsStore{boxes: map[string]*models.SavingBox{}}
}

func (f *fakeSavingsStore) CreateBox(_ context.Context, box *models.SavingBox) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.boxes[box.BoxID] = box
	return nil
}

func (f *fakeSavingsStore) ListBoxes(_ context.Context, _ string) ([]models.SavingBox, error) {
	var out []models.SavingBox
	for _, b := range f.boxes {
		if !b.Archived {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeSavingsStore) GetBox(_ context.Context, _, boxID string) (*models.SavingBox, error) {
	b, ok := f.boxes[boxID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeSavingsStore) ArchiveBox(_ context.Context, _, boxID string) error {
	b, ok := f.boxes[boxID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	b.Archived = true
	return nil
}

func (f *fakeSavingsStore) DeleteBox(_ context.Context, _, boxID string) error {
	if _, ok := f.boxes[boxID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.boxes, boxID)
	return nil
}

func (f *fakeSavingsStore) AddMovement(_ context.Context, movement *models.SavingMovement, tx *models.Transaction) error {
	if f.movementErr != nil {
		return f.movementErr
	}
	f.lastMovement = movement
	f.lastTx = tx
	if b, ok := f.boxes[movement.BoxID]; ok {
		b.Movements = append(b.Movements, *movement)
	}
	return nil
}

func seedBox(store *fakeSavingsStore, deposits ...string) *models.SavingBox {
	box := &models.SavingBox{BoxID: "box1", OwnerID: "owner", Name: "Vacation"}
	for _, amount := range deposits {
		box.Movements = append(box.Movements, models.SavingMovement{
			BoxID: "box1", Kind: models.MovementDeposit, Amount: dec(amount),
		})
	}
	store.boxes[box.BoxID] = box
	return box
}

func movementReq(amount string) dto.MovementRequest {
	return dto.MovementRequest{Amount: amount, Date: "2025-06-01"}
}

// --- Tests ---

func TestCreateBoxRequiresName(t *testing.T) {
	svc := NewSavingsService(newFakeSavingsStore())

	_, err := svc.CreateBox(context.Background(), "owner", dto.CreateBoxRequest{Name: "  "})
	if _, ok := err.(*errs.ValidationError); !ok {
		t.Fatalf("error = %T (%v), want ValidationError", err, err)
	}
}

func TestCreateBoxStartsEmpty(t *testing.T) {
	svc := NewSavingsService(newFakeSavingsStore())

	view, err := svc.CreateBox(context.Background(), "owner", dto.CreateBoxRequest{Name: "Emergency", TargetAmount: "5000"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !view.Balance.IsZero() {
		t.Errorf("new box balance = %s, want 0", view.Balance)
	}
	if !view.TargetAmount.Equal(dec("5000")) {
		t.Errorf("target = %s", view.TargetAmount)
	}
}

func TestDepositIncreasesBalance(t *testing.T) {
	store := newFakeSavingsStore()
	seedBox(store)
	svc := NewSavingsService(store)

	result, err := svc.Deposit(context.Background(), "owner", "box1", movementReq("200.00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Balance.Equal(dec("200.00")) {
		t.Errorf("balance = %s, want 200.00", result.Balance)
	}

	// The paired ledger entry is an expense in the reserved category.
	if store.lastTx == nil {
		t.Fatal("no transaction synthesized")
	}
	if store.lastTx.Kind != models.KindExpense || store.lastTx.Category != models.CategoryBoxDeposit {
		t.Errorf("paired tx = %s/%q", store.lastTx.Kind, store.lastTx.Category)
	}
	if store.lastMovement.Kind != models.MovementDeposit {
		t.Errorf("movement kind = %s", store.lastMovement.Kind)
	}
	if store.lastMovement.TransactionID == nil || *store.lastMovement.TransactionID != store.lastTx.TransactionID {
		t.Error("movement does not reference its paired transaction")
	}
}

func TestWithdrawRejectsOverdraw(t *testing.T) {
	store := newFakeSavingsStore()
	seedBox(store, "200.00")
	svc := NewSavingsService(store)

	_, err := svc.Withdraw(context.Background(), "owner", "box1", movementReq("250.00"))
	if _, ok := err.(*errs.ValidationError); !ok {
		t.Fatalf("error = %T (%v), want ValidationError", err, err)
	}
	if store.lastMovement != nil {
		t.Error("overdraw must not record a movement")
	}
}

func TestWithdrawExactBalance(t *testing.T) {
	store := newFakeSavingsStore()
	seedBox(store, "200.00")
	svc := NewSavingsService(store)

	result, err := svc.Withdraw(context.Background(), "owner", "box1", movementReq("200.00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Balance.IsZero() {
		t.Errorf("balance = %s, want 0", result.Balance)
	}
	if store.lastTx.Kind != models.KindIncome || store.lastTx.Category != models.CategoryBoxWithdrawal {
		t.Errorf("paired tx = %s/%q", store.lastTx.Kind, store.lastTx.Category)
	}
}

func TestWithdrawValidatesAmountAndDate(t *testing.T) {
	store := newFakeSavingsStore()
	seedBox(store, "100.00")
	svc := NewSavingsService(store)

	if _, err := svc.Withdraw(context.Background(), "owner", "box1", dto.MovementRequest{Amount: "-1", Date: "2025-06-01"}); err == nil {
		t.Error("accepted negative amount")
	}
	if _, err := svc.Withdraw(context.Background(), "owner", "box1", dto.MovementRequest{Amount: "10", Date: "June 1st"}); err == nil {
		t.Error("accepted malformed date")
	}
}

func TestMovementOnMissingBox(t *testing.T) {
	svc := NewSavingsService(newFakeSavingsStore())

	_, err := svc.Deposit(context.Background(), "owner", "nope", movementReq("10.00"))
	if _, ok := err.(*errs.NotFoundError); !ok {
		t.Fatalf("error = %T (%v), want NotFoundError", err, err)
	}
}

func TestBalanceDerivedFromMovements(t *testing.T) {
	box := &models.SavingBox{Movements: []models.SavingMovement{
		{Kind: models.MovementDeposit, Amount: dec("150.00")},
		{Kind: models.MovementDeposit, Amount: dec("50.00")},
		{Kind: models.MovementWithdraw, Amount: dec("75.50")},
	}}
	if !box.Balance().Equal(dec("124.50")) {
		t.Errorf("balance = %s, want 124.50", box.Balance())
	}
}
