package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the kind of balance change a transaction records.
type TransactionType string

const (
	Credit TransactionType = "Credit"
	Debit  TransactionType = "Debit"
)

// Default descriptions used when the caller does not provide one.
const (
	DefaultCreditDescription = "Credit transaction"
	DefaultDebitDescription  = "Debit transaction"
)

// ParseTransactionType parses the persisted name of a transaction type.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case Credit, Debit:
		return TransactionType(s), nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// Transaction is an immutable record of a credit or a debit.
type Transaction struct {
	Timestamp   time.Time
	ID          string
	Type        TransactionType
	Description string
	Amount      decimal.Decimal
}

// Signed returns the amount with the sign it applies to the balance.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == Debit {
		return t.Amount.Neg()
	}
	return t.Amount
}
