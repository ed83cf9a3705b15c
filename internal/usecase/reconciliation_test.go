package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/walletledger/internal/domain"
)

func TestWalletStore_Reconcile(t *testing.T) {
	healthy := domain.NewWallet("alice")
	if _, err := healthy.Credit("1", fixedNow, decimal.NewFromInt(100), ""); err != nil {
		t.Fatalf("credit failed: %v", err)
	}
	if _, err := healthy.Debit("2", fixedNow, decimal.NewFromInt(40), ""); err != nil {
		t.Fatalf("debit failed: %v", err)
	}

	drifted := domain.NewWallet("bob")
	if _, err := drifted.Credit("3", fixedNow, decimal.NewFromInt(10), ""); err != nil {
		t.Fatalf("credit failed: %v", err)
	}
	drifted.Balance = decimal.NewFromInt(15)

	overdrawn := domain.NewWallet("carol")
	overdrawn.Transactions = []domain.Transaction{
		{ID: "4", Type: domain.Debit, Amount: decimal.NewFromInt(5), Timestamp: fixedNow},
		{ID: "5", Type: domain.Credit, Amount: decimal.NewFromInt(5), Timestamp: fixedNow},
	}

	store, _, _ := newStore(t, map[string]*domain.Wallet{
		"alice": healthy,
		"bob":   drifted,
		"carol": overdrawn,
		"dave":  domain.NewWallet("dave"),
	})

	report, err := store.Reconcile(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.TotalWallets != 4 || report.ReconciledWallets != 2 {
		t.Fatalf("expected 2 of 4 wallets reconciled, got %d of %d", report.ReconciledWallets, report.TotalWallets)
	}
	if report.Consistent() {
		t.Fatal("expected report to be inconsistent")
	}
	if len(report.Discrepancies) != 2 {
		t.Fatalf("expected 2 discrepancies, got %d", len(report.Discrepancies))
	}

	bob := report.Discrepancies[0]
	if bob.Wallet != "bob" || !bob.Difference.Equal(decimal.NewFromInt(5)) || bob.WentNegative {
		t.Errorf("unexpected bob result: %+v", bob)
	}

	carol := report.Discrepancies[1]
	if carol.Wallet != "carol" || !carol.WentNegative || !carol.Difference.IsZero() {
		t.Errorf("unexpected carol result: %+v", carol)
	}
	if !report.CheckedAt.Equal(fixedNow) {
		t.Errorf("expected CheckedAt %s, got %s", fixedNow, report.CheckedAt)
	}
}

func TestWalletStore_ReconcileEmpty(t *testing.T) {
	store, _, _ := newStore(t, nil)

	report, err := store.Reconcile(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.Consistent() || report.TotalWallets != 0 {
		t.Fatalf("expected empty consistent report, got %+v", report)
	}
}

func TestWalletStore_ReconcileFloatDrift(t *testing.T) {
	drifted := domain.NewWallet("alice")
	drifted.Transactions = []domain.Transaction{
		{ID: "1", Type: domain.Credit, Amount: decimal.NewFromFloat(0.1), Timestamp: fixedNow},
		{ID: "2", Type: domain.Credit, Amount: decimal.NewFromFloat(0.2), Timestamp: fixedNow},
		{ID: "3", Type: domain.Debit, Amount: decimal.NewFromFloat(0.30000000000000004), Timestamp: fixedNow},
	}
	drifted.Balance = decimal.NewFromFloat(5.551115123125783e-17)

	store, _, _ := newStore(t, map[string]*domain.Wallet{"alice": drifted})

	report, err := store.Reconcile(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.Consistent() {
		t.Fatalf("expected float rounding drift to reconcile, got %+v", report.Discrepancies)
	}
}
