package domain

import "github.com/shopspring/decimal"

// HistoryEntry pairs a transaction with the balance right after it was applied.
type HistoryEntry struct {
	Transaction
	RunningBalance decimal.Decimal
}

// Replay walks transactions in order and recomputes the running balance from zero.
// It does not read the stored wallet balance.
func Replay(transactions []Transaction) []HistoryEntry {
	entries := make([]HistoryEntry, 0, len(transactions))
	running := decimal.Zero
	for _, tx := range transactions {
		running = running.Add(tx.Signed())
		entries = append(entries, HistoryEntry{
			Transaction:    tx,
			RunningBalance: running,
		})
	}
	return entries
}
