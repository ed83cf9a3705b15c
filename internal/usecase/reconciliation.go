package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/walletledger/internal/domain"
)

// reconcilePlaces is the scale balances are compared at. Files written with
// binary floating point drift by far less than this.
const reconcilePlaces = 9

// ErrInconsistentLedger is returned when a stored balance disagrees with its history.
var ErrInconsistentLedger = errors.New("ledger is inconsistent: stored balances do not match transaction history")

// ReconciliationResult represents the result of a reconciliation check
type ReconciliationResult struct {
	Wallet            string
	RecordedBalance   decimal.Decimal
	CalculatedBalance decimal.Decimal
	Difference        decimal.Decimal
	// WentNegative is set when replaying the history overdraws the wallet at some point.
	WentNegative bool
	IsReconciled bool
}

// ReconciliationReport represents a full reconciliation report
type ReconciliationReport struct {
	TotalWallets      int
	ReconciledWallets int
	Discrepancies     []ReconciliationResult
	CheckedAt         time.Time
}

// Consistent reports whether every wallet reconciled.
func (r *ReconciliationReport) Consistent() bool {
	return len(r.Discrepancies) == 0
}

// Reconcile replays every wallet's history and compares it with the cached
// balance. It never modifies the store.
func (s *WalletStore) Reconcile(ctx context.Context) (*ReconciliationReport, error) {
	names := make([]string, 0, len(s.wallets))
	for name := range s.wallets {
		names = append(names, name)
	}
	sort.Strings(names)

	report := &ReconciliationReport{
		TotalWallets:  len(names),
		Discrepancies: make([]ReconciliationResult, 0),
		CheckedAt:     s.now().UTC(),
	}

	for _, name := range names {
		result := reconcileWallet(s.wallets[name])
		if result.IsReconciled {
			report.ReconciledWallets++
		} else {
			report.Discrepancies = append(report.Discrepancies, result)
		}
	}

	return report, nil
}

func reconcileWallet(w *domain.Wallet) ReconciliationResult {
	result := ReconciliationResult{
		Wallet:            w.Name,
		RecordedBalance:   w.Balance,
		CalculatedBalance: decimal.Zero,
	}

	for _, entry := range domain.Replay(w.Transactions) {
		if entry.RunningBalance.Round(reconcilePlaces).IsNegative() {
			result.WentNegative = true
		}
		result.CalculatedBalance = entry.RunningBalance
	}

	result.Difference = result.RecordedBalance.Sub(result.CalculatedBalance)
	result.IsReconciled = result.Difference.Round(reconcilePlaces).IsZero() && !result.WentNegative
	return result
}
