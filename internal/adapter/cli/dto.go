package cli

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/walletledger/internal/domain"
	"github.com/iho/walletledger/internal/usecase"
)

// HistoryEntryResponse is a history line in JSON output.
type HistoryEntryResponse struct {
	ID             string          `json:"id"`
	Type           string          `json:"transaction_type"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description"`
	Timestamp      time.Time       `json:"timestamp"`
	RunningBalance decimal.Decimal `json:"running_balance"`
}

// HistoryFromDomain converts replayed history entries to responses.
func HistoryFromDomain(entries []domain.HistoryEntry) []HistoryEntryResponse {
	result := make([]HistoryEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = HistoryEntryResponse{
			ID:             e.ID,
			Type:           string(e.Type),
			Amount:         e.Amount,
			Description:    e.Description,
			Timestamp:      e.Timestamp,
			RunningBalance: e.RunningBalance,
		}
	}
	return result
}

// WalletResponse is a wallet summary in JSON output.
type WalletResponse struct {
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// WalletsFromSummaries converts wallet summaries to responses.
func WalletsFromSummaries(summaries []usecase.WalletSummary) []WalletResponse {
	result := make([]WalletResponse, len(summaries))
	for i, s := range summaries {
		result[i] = WalletResponse{Name: s.Name, Balance: s.Balance}
	}
	return result
}

// ReconciliationResponse is the reconcile report in JSON output.
type ReconciliationResponse struct {
	Consistent        bool                  `json:"consistent"`
	TotalWallets      int                   `json:"total_wallets"`
	ReconciledWallets int                   `json:"reconciled_wallets"`
	Discrepancies     []DiscrepancyResponse `json:"discrepancies"`
	CheckedAt         time.Time             `json:"checked_at"`
}

// DiscrepancyResponse describes a wallet that failed reconciliation.
type DiscrepancyResponse struct {
	Wallet            string          `json:"wallet"`
	RecordedBalance   decimal.Decimal `json:"recorded_balance"`
	CalculatedBalance decimal.Decimal `json:"calculated_balance"`
	Difference        decimal.Decimal `json:"difference"`
	WentNegative      bool            `json:"went_negative"`
}

// ReconciliationFromReport converts a reconciliation report to a response.
func ReconciliationFromReport(r *usecase.ReconciliationReport) ReconciliationResponse {
	discrepancies := make([]DiscrepancyResponse, len(r.Discrepancies))
	for i, d := range r.Discrepancies {
		discrepancies[i] = DiscrepancyResponse{
			Wallet:            d.Wallet,
			RecordedBalance:   d.RecordedBalance,
			CalculatedBalance: d.CalculatedBalance,
			Difference:        d.Difference,
			WentNegative:      d.WentNegative,
		}
	}
	return ReconciliationResponse{
		Consistent:        r.Consistent(),
		TotalWallets:      r.TotalWallets,
		ReconciledWallets: r.ReconciledWallets,
		Discrepancies:     discrepancies,
		CheckedAt:         r.CheckedAt,
	}
}
