package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet is a named account holding a running balance and its transaction log.
// Balance always equals the sum of credits minus debits in Transactions and
// never goes negative.
type Wallet struct {
	Name         string
	Balance      decimal.Decimal
	Transactions []Transaction
}

// NewWallet returns an empty wallet with a zero balance.
func NewWallet(name string) *Wallet {
	return &Wallet{
		Name:         name,
		Balance:      decimal.Zero,
		Transactions: []Transaction{},
	}
}

// Credit appends a credit of amount and increases the balance.
// An empty description is replaced by DefaultCreditDescription.
func (w *Wallet) Credit(id string, at time.Time, amount decimal.Decimal, description string) (Transaction, error) {
	if err := ValidateAmount(amount); err != nil {
		return Transaction{}, err
	}
	if description == "" {
		description = DefaultCreditDescription
	}

	return w.apply(Transaction{
		Timestamp:   at.UTC(),
		ID:          id,
		Type:        Credit,
		Description: description,
		Amount:      amount,
	}), nil
}

// Debit appends a debit of amount and decreases the balance.
// An empty description is replaced by DefaultDebitDescription.
func (w *Wallet) Debit(id string, at time.Time, amount decimal.Decimal, description string) (Transaction, error) {
	if err := ValidateAmount(amount); err != nil {
		return Transaction{}, err
	}
	if amount.GreaterThan(w.Balance) {
		return Transaction{}, ErrInsufficientFunds
	}
	if description == "" {
		description = DefaultDebitDescription
	}

	return w.apply(Transaction{
		Timestamp:   at.UTC(),
		ID:          id,
		Type:        Debit,
		Description: description,
		Amount:      amount,
	}), nil
}

func (w *Wallet) apply(tx Transaction) Transaction {
	w.Balance = w.Balance.Add(tx.Signed())
	w.Transactions = append(w.Transactions, tx)
	return tx
}
