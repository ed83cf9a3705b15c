package usecase

import (
	"context"

	"github.com/iho/walletledger/internal/domain"
)

// WalletRepository persists the whole wallet map at once.
type WalletRepository interface {
	// Load returns the persisted wallets. A missing store yields an empty map
	// and no error; an unreadable one yields an error wrapping domain.ErrLoadWarning.
	Load(ctx context.Context) (map[string]*domain.Wallet, error)
	// Save replaces the persisted state with wallets.
	Save(ctx context.Context, wallets map[string]*domain.Wallet) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
