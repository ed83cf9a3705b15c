package domain

import (
	"errors"
	"fmt"
)

var (
	// Wallet errors
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrWalletAlreadyExists = errors.New("wallet already exists")
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrNoWallets           = errors.New("no wallets found")

	// Store errors
	ErrPersistence = errors.New("failed to persist wallets")
	ErrLoadWarning = errors.New("could not read wallets file")
)

// WalletError ties a wallet sentinel error to the wallet it concerns.
type WalletError struct {
	Wallet string
	Err    error
}

// NewWalletError wraps err for the named wallet.
func NewWalletError(wallet string, err error) *WalletError {
	return &WalletError{Wallet: wallet, Err: err}
}

func (e *WalletError) Error() string {
	switch {
	case errors.Is(e.Err, ErrWalletNotFound):
		return fmt.Sprintf("Wallet '%s' not found", e.Wallet)
	case errors.Is(e.Err, ErrWalletAlreadyExists):
		return fmt.Sprintf("Wallet '%s' already exists", e.Wallet)
	default:
		return fmt.Sprintf("wallet '%s': %v", e.Wallet, e.Err)
	}
}

func (e *WalletError) Unwrap() error {
	return e.Err
}
