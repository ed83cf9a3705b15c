package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/iho/walletledger/internal/domain"
)

const fileMode = 0o644

// WalletRepository implements usecase.WalletRepository on a single JSON file.
// Every Save rewrites the whole file in place: there is no temporary file,
// rename or lock, so concurrent processes overwrite each other.
type WalletRepository struct {
	path    string
	retrier *Retrier
}

// NewWalletRepository creates a new WalletRepository for the file at path.
func NewWalletRepository(path string, retrier *Retrier) *WalletRepository {
	return &WalletRepository{
		path:    path,
		retrier: retrier,
	}
}

// Path returns the file the repository reads and writes.
func (r *WalletRepository) Path() string {
	return r.path
}

// Load reads every wallet from the file. A missing file is an empty store.
func (r *WalletRepository) Load(ctx context.Context) (map[string]*domain.Wallet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]*domain.Wallet), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", domain.ErrLoadWarning, r.path, err)
	}

	var records map[string]walletRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w %s: %w", domain.ErrLoadWarning, r.path, err)
	}

	wallets := make(map[string]*domain.Wallet, len(records))
	for key, rec := range records {
		w, err := recordToWallet(key, rec)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", domain.ErrLoadWarning, r.path, err)
		}
		wallets[key] = w
	}

	return wallets, nil
}

// Save serializes wallets as indented JSON and overwrites the file.
func (r *WalletRepository) Save(ctx context.Context, wallets map[string]*domain.Wallet) error {
	records := make(map[string]walletRecord, len(wallets))
	for key, w := range wallets {
		records[key] = walletToRecord(w)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize wallets: %w", err)
	}

	return r.retrier.Retry(ctx, func() error {
		if err := os.WriteFile(r.path, data, fileMode); err != nil {
			return fmt.Errorf("failed to write wallets file: %w", err)
		}
		return nil
	})
}
