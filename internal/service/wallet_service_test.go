package service_test

import (
	"errors"
	"testing"

	"github.com/codeAntu/battle-zone-sub000/internal/domain"
	"github.com/codeAntu/battle-zone-sub000/internal/models"
	"github.com/codeAntu/battle-zone-sub000/internal/repository"
	"github.com/codeAntu/battle-zone-sub000/internal/service"
	"github.com/codeAntu/battle-zone-sub000/internal/testutil"

	"gorm.io/gorm"
)

func newWalletService(t *testing.T) (*service.WalletService, *gorm.DB, *repository.LedgerRepository) {
	t.Helper()
	db := testutil.NewTestDB(t)
	ledgerRepo := repository.NewLedgerRepository(db)
	svc := service.NewWalletService(db,
		repository.NewWalletRequestRepository(db),
		ledgerRepo,
		repository.NewUserRepository(db),
	)
	return svc, db, ledgerRepo
}

func TestRequestDeposit_PendingWithoutBalanceChange(t *testing.T) {
	svc, db, _ := newWalletService(t)
	u := testutil.CreateUser(t, db, "a@test.io", 0)

	req, err := svc.RequestDeposit(u.ID, 500, "player@upi", "TXN123")
	if err != nil {
		t.Fatalf("request deposit: %v", err)
	}
	if req.Status != domain.StatusPending {
		t.Errorf("status = %q, want PENDING", req.Status)
	}
	if got := testutil.Balance(t, db, u.ID); got != 0 {
		t.Errorf("balance = %d, want 0 before approval", got)
	}
	var entry models.Transaction
	if err := db.Where("reference = ?", req.OrderID).First(&entry).Error; err != nil {
		t.Fatalf("pending entry missing: %v", err)
	}
	if entry.Status != domain.StatusPending || entry.BalanceEffect != domain.EffectIncrease {
		t.Errorf("entry = %+v, want pending increase", entry)
	}
}

func TestApproveDeposit_CreditsExactly(t *testing.T) {
	svc, db, _ := newWalletService(t)
	u := testutil.CreateUser(t, db, "a@test.io", 0)
	req, _ := svc.RequestDeposit(u.ID, 500, "player@upi", "TXN123")

	decided, err := svc.ApproveDeposit(req.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if decided.Status != domain.StatusApproved {
		t.Errorf("status = %q, want APPROVED", decided.Status)
	}
	if got := testutil.Balance(t, db, u.ID); got != 500 {
		t.Errorf("balance = %d, want 500", got)
	}
	var entry models.Transaction
	if err := db.Where("reference = ? AND status = ?", req.OrderID, domain.StatusApproved).First(&entry).Error; err != nil {
		t.Fatalf("approved deposit entry missing: %v", err)
	}
	if entry.Type != domain.TxTypeDeposit || entry.Amount != 500 {
		t.Errorf("entry = %+v, want DEPOSIT of 500", entry)
	}
}

func TestApprove_TerminalRequestFails(t *testing.T) {
	svc, db, _ := newWalletService(t)
	u := testutil.CreateUser(t, db, "a@test.io", 0)
	req, _ := svc.RequestDeposit(u.ID, 500, "player@upi", "TXN123")

	if _, err := svc.ApproveDeposit(req.ID); err != nil {
		t.Fatalf("first approve: %v", err)
	}
	if _, err := svc.ApproveDeposit(req.ID); !errors.Is(err, domain.ErrAlreadyDecided) {
		t.Errorf("second approve err = %v, want ErrAlreadyDecided", err)
	}
	if got := testutil.Balance(t, db, u.ID); got != 500 {
		t.Errorf("balance = %d, want 500 (no double credit)", got)
	}
}

func TestReject_RequiresReasonAndIsTerminal(t *testing.T) {
	svc, db, _ := newWalletService(t)
	u := testutil.CreateUser(t, db, "a@test.io", 0)
	req, _ := svc.RequestDeposit(u.ID, 500, "player@upi", "TXN123")

	if _, err := svc.Reject(req.ID, ""); !errors.Is(err, domain.ErrReasonRequired) {
		t.Fatalf("reject without reason err = %v, want ErrReasonRequired", err)
	}
	rejected, err := svc.Reject(req.ID, "txn reference not found")
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != domain.StatusRejected || rejected.RejectReason == "" {
		t.Errorf("rejected = %+v, want REJECTED with reason", rejected)
	}
	if got := testutil.Balance(t, db, u.ID); got != 0 {
		t.Errorf("balance = %d, want 0 (reject has no ledger effect)", got)
	}
	if _, err := svc.ApproveDeposit(req.ID); !errors.Is(err, domain.ErrAlreadyDecided) {
		t.Errorf("approve after reject err = %v, want ErrAlreadyDecided", err)
	}
	if _, err := svc.Reject(req.ID, "again"); !errors.Is(err, domain.ErrAlreadyDecided) {
		t.Errorf("double reject err = %v, want ErrAlreadyDecided", err)
	}
}

func TestRequestWithdrawal_ChecksBalance(t *testing.T) {
	svc, db, _ := newWalletService(t)
	u := testutil.CreateUser(t, db, "a@test.io", 100)

	if _, err := svc.RequestWithdrawal(u.ID, 101, "player@upi"); !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Errorf("err = %v, want ErrInsufficientFunds", err)
	}
	if _, err := svc.RequestWithdrawal(u.ID, 0, "player@upi"); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Errorf("err = %v, want ErrInvalidAmount", err)
	}
	if _, err := svc.RequestWithdrawal(u.ID, 100, "player@upi"); err != nil {
		t.Errorf("valid request failed: %v", err)
	}
	if got := testutil.Balance(t, db, u.ID); got != 100 {
		t.Errorf("balance = %d, want 100 (not reserved at request time)", got)
	}
}

func TestApproveWithdrawal_StaleBalanceFailsAndStaysPending(t *testing.T) {
	svc, db, ledger := newWalletService(t)
	u := testutil.CreateUser(t, db, "a@test.io", 100)

	req, err := svc.RequestWithdrawal(u.ID, 80, "player@upi")
	if err != nil {
		t.Fatalf("request withdrawal: %v", err)
	}
	// Balance drops between request and approval.
	if _, err := ledger.Debit(u.ID, 50, domain.TxTypeEntryFee, "tournament-1", "entry fee"); err != nil {
		t.Fatalf("debit: %v", err)
	}

	if _, err := svc.ApproveWithdrawal(req.ID); !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("approve err = %v, want ErrInsufficientFunds", err)
	}
	var reloaded models.WalletRequest
	db.First(&reloaded, req.ID)
	if reloaded.Status != domain.StatusPending {
		t.Errorf("status = %q, want PENDING after failed approval", reloaded.Status)
	}
	if got := testutil.Balance(t, db, u.ID); got != 50 {
		t.Errorf("balance = %d, want 50 (never negative, never silently debited)", got)
	}
}

func TestApproveWithdrawal_DebitsOnSuccess(t *testing.T) {
	svc, db, _ := newWalletService(t)
	u := testutil.CreateUser(t, db, "a@test.io", 100)
	req, _ := svc.RequestWithdrawal(u.ID, 80, "player@upi")

	if _, err := svc.ApproveWithdrawal(req.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if got := testutil.Balance(t, db, u.ID); got != 20 {
		t.Errorf("balance = %d, want 20", got)
	}
	var entry models.Transaction
	if err := db.Where("reference = ? AND status = ?", req.OrderID, domain.StatusApproved).First(&entry).Error; err != nil {
		t.Fatalf("approved withdrawal entry missing: %v", err)
	}
	if entry.BalanceEffect != domain.EffectDecrease {
		t.Errorf("effect = %q, want DECREASE", entry.BalanceEffect)
	}
}

func TestApprove_TypeMismatch(t *testing.T) {
	svc, db, _ := newWalletService(t)
	u := testutil.CreateUser(t, db, "a@test.io", 100)
	dep, _ := svc.RequestDeposit(u.ID, 50, "player@upi", "TXN1")
	wd, _ := svc.RequestWithdrawal(u.ID, 50, "player@upi")

	if _, err := svc.ApproveWithdrawal(dep.ID); !errors.Is(err, domain.ErrRequestNotFound) {
		t.Errorf("approve deposit as withdrawal err = %v, want ErrRequestNotFound", err)
	}
	if _, err := svc.ApproveDeposit(wd.ID); !errors.Is(err, domain.ErrRequestNotFound) {
		t.Errorf("approve withdrawal as deposit err = %v, want ErrRequestNotFound", err)
	}
}
