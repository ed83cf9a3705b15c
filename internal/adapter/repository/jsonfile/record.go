package jsonfile

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/walletledger/internal/domain"
)

// walletRecord is the on-disk shape of a wallet. Amounts are JSON numbers.
type walletRecord struct {
	Name         string              `json:"name"`
	Balance      float64             `json:"balance"`
	Transactions []transactionRecord `json:"transactions"`
}

type transactionRecord struct {
	ID              string    `json:"id"`
	TransactionType string    `json:"transaction_type"`
	Amount          float64   `json:"amount"`
	Description     string    `json:"description"`
	Timestamp       time.Time `json:"timestamp"`
}

func walletToRecord(w *domain.Wallet) walletRecord {
	txs := make([]transactionRecord, len(w.Transactions))
	for i, tx := range w.Transactions {
		txs[i] = transactionRecord{
			ID:              tx.ID,
			TransactionType: string(tx.Type),
			Amount:          tx.Amount.InexactFloat64(),
			Description:     tx.Description,
			Timestamp:       tx.Timestamp.UTC(),
		}
	}

	return walletRecord{
		Name:         w.Name,
		Balance:      w.Balance.InexactFloat64(),
		Transactions: txs,
	}
}

// recordToWallet converts a decoded record. key is the map key the record was stored under
// and names the wallet when the record itself has no name.
func recordToWallet(key string, r walletRecord) (*domain.Wallet, error) {
	name := r.Name
	if name == "" {
		name = key
	}

	w := domain.NewWallet(name)
	w.Balance = decimal.NewFromFloat(r.Balance)

	for _, rec := range r.Transactions {
		txType, err := domain.ParseTransactionType(rec.TransactionType)
		if err != nil {
			return nil, fmt.Errorf("wallet %q, transaction %q: %w", key, rec.ID, err)
		}
		w.Transactions = append(w.Transactions, domain.Transaction{
			Timestamp:   rec.Timestamp.UTC(),
			ID:          rec.ID,
			Type:        txType,
			Description: rec.Description,
			Amount:      decimal.NewFromFloat(rec.Amount),
		})
	}

	return w, nil
}
