package cli

import (
	"errors"

	"github.com/iho/walletledger/internal/domain"
	"github.com/iho/walletledger/internal/usecase"
)

// resultLabel maps a command outcome to the metrics result label.
func resultLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrWalletAlreadyExists):
		return "already_exists"
	case errors.Is(err, domain.ErrWalletNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidWalletName):
		return "invalid_name"
	case errors.Is(err, domain.ErrPersistence):
		return "persistence_failure"
	case errors.Is(err, usecase.ErrInconsistentLedger):
		return "inconsistent"
	default:
		return "error"
	}
}
