package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/walletledger/internal/domain"
	"github.com/iho/walletledger/internal/usecase"
)

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("expected short unchanged, got %q", got)
	}

	if got := truncate("longerstring", 6); got != "lon..." {
		t.Fatalf("expected lon..., got %q", got)
	}

	if got := truncate("héllo wörld", 8); got != "héllo..." {
		t.Fatalf("expected rune-aware truncation, got %q", got)
	}
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := printJSON(&buf, struct {
		A int `json:"a"`
	}{A: 1}); err != nil {
		t.Fatalf("printJSON failed: %v", err)
	}

	expected := "{\n  \"a\": 1\n}\n"
	if buf.String() != expected {
		t.Fatalf("unexpected json output:\n%s", buf.String())
	}
}

func TestRenderHistory(t *testing.T) {
	money, err := NewMoneyFormatter("USD")
	if err != nil {
		t.Fatal(err)
	}
	at := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)
	entries := domain.Replay([]domain.Transaction{
		{ID: "1", Type: domain.Credit, Amount: decimal.NewFromInt(100), Description: "Credit transaction", Timestamp: at},
		{ID: "2", Type: domain.Debit, Amount: decimal.NewFromInt(40), Description: strings.Repeat("x", 60), Timestamp: at},
	})

	var buf bytes.Buffer
	renderHistory(&buf, "alice", entries, money)
	out := buf.String()

	for _, want := range []string{"Date", "Type", "Amount", "Description", "Balance", "2025-02-03 04:05:06", "CREDIT", "DEBIT", "$100.00", "$40.00", "$60.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected history output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, strings.Repeat("x", 41)) {
		t.Errorf("expected long description to be truncated, got:\n%s", out)
	}
}

func TestRenderWallets(t *testing.T) {
	money, err := NewMoneyFormatter("USD")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	renderWallets(&buf, []usecase.WalletSummary{
		{Name: "alice", Balance: decimal.NewFromInt(60)},
		{Name: "bob", Balance: decimal.Zero},
	}, money)
	out := buf.String()

	if !strings.HasPrefix(out, "Available wallets:\n") {
		t.Errorf("expected heading, got:\n%s", out)
	}
	for _, want := range []string{"alice", "$60.00", "bob", "$0.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected wallet output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestResultLabel(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "success"},
		{domain.ErrInvalidAmount, "invalid_amount"},
		{domain.ErrInsufficientFunds, "insufficient_funds"},
		{domain.ErrWalletAlreadyExists, "already_exists"},
		{domain.ErrWalletNotFound, "not_found"},
		{domain.ErrInvalidWalletName, "invalid_name"},
		{domain.ErrPersistence, "persistence_failure"},
		{usecase.ErrInconsistentLedger, "inconsistent"},
		{domain.ErrNoWallets, "error"},
	}

	for _, tt := range tests {
		if got := resultLabel(tt.err); got != tt.want {
			t.Errorf("resultLabel(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestRenderReconciliation(t *testing.T) {
	money, err := NewMoneyFormatter("USD")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	renderReconciliation(&buf, &usecase.ReconciliationReport{TotalWallets: 2, ReconciledWallets: 2}, money)
	if got := buf.String(); got != "Consistency check PASSED: 2 of 2 wallets reconciled\n" {
		t.Fatalf("unexpected passed output: %q", got)
	}

	buf.Reset()
	renderReconciliation(&buf, &usecase.ReconciliationReport{
		TotalWallets:      2,
		ReconciledWallets: 1,
		Discrepancies: []usecase.ReconciliationResult{{
			Wallet:            "bob",
			RecordedBalance:   decimal.NewFromInt(15),
			CalculatedBalance: decimal.NewFromInt(10),
			Difference:        decimal.NewFromInt(5),
		}},
	}, money)
	out := buf.String()
	for _, want := range []string{"Consistency check FAILED: 1 of 2 wallets reconciled", "bob", "$15.00", "$10.00", "$5.00", "no"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected reconcile output to contain %q, got:\n%s", want, out)
		}
	}
}
