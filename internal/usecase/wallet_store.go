package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/walletledger/internal/domain"
)

// WalletStore owns the in-memory wallet map for the lifetime of one command.
// It is loaded once and written back in full after every successful mutation.
// It is not safe for concurrent use.
type WalletStore struct {
	repo    WalletRepository
	idGen   IDGenerator
	now     func() time.Time
	logger  zerolog.Logger
	wallets map[string]*domain.Wallet
}

// Option configures a WalletStore.
type Option func(*WalletStore)

// WithClock overrides the source of transaction timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *WalletStore) { s.now = now }
}

// WithLogger sets the logger used for load warnings and save tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *WalletStore) { s.logger = logger }
}

// NewWalletStore creates an empty WalletStore. Call Load to read persisted state.
func NewWalletStore(repo WalletRepository, idGen IDGenerator, opts ...Option) *WalletStore {
	s := &WalletStore{
		repo:    repo,
		idGen:   idGen,
		now:     time.Now,
		logger:  zerolog.Nop(),
		wallets: make(map[string]*domain.Wallet),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory map with the persisted one.
// An unreadable store is logged and treated as empty; the file itself is not touched.
func (s *WalletStore) Load(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultLoadTimeout)
	defer cancel()

	wallets, err := s.repo.Load(ctx)
	if errors.Is(err, domain.ErrLoadWarning) {
		s.logger.Warn().Err(err).Msg("starting with an empty wallet store")
		s.wallets = make(map[string]*domain.Wallet)
		return nil
	}
	if err != nil {
		return err
	}

	if wallets == nil {
		wallets = make(map[string]*domain.Wallet)
	}
	s.wallets = wallets
	s.logger.Debug().Int("wallets", len(wallets)).Msg("wallets loaded")
	return nil
}

// Create inserts a new empty wallet and persists the store.
func (s *WalletStore) Create(ctx context.Context, name string) (*domain.Wallet, error) {
	if err := domain.ValidateWalletName(name); err != nil {
		return nil, err
	}
	if _, ok := s.wallets[name]; ok {
		return nil, domain.NewWalletError(name, domain.ErrWalletAlreadyExists)
	}

	wallet := domain.NewWallet(name)
	s.wallets[name] = wallet

	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return wallet, nil
}

// MutationInput represents input for crediting or debiting a wallet.
type MutationInput struct {
	Wallet      string
	Amount      decimal.Decimal
	Description string
}

// MutationResult is the outcome of a successful credit or debit.
type MutationResult struct {
	Transaction domain.Transaction
	Balance     decimal.Decimal
}

// Credit credits a wallet and persists the store.
func (s *WalletStore) Credit(ctx context.Context, input MutationInput) (*MutationResult, error) {
	return s.mutate(ctx, input, (*domain.Wallet).Credit)
}

// Debit debits a wallet and persists the store.
func (s *WalletStore) Debit(ctx context.Context, input MutationInput) (*MutationResult, error) {
	return s.mutate(ctx, input, (*domain.Wallet).Debit)
}

type walletOp func(w *domain.Wallet, id string, at time.Time, amount decimal.Decimal, description string) (domain.Transaction, error)

func (s *WalletStore) mutate(ctx context.Context, input MutationInput, op walletOp) (*MutationResult, error) {
	wallet, err := s.get(input.Wallet)
	if err != nil {
		return nil, err
	}

	tx, err := op(wallet, s.idGen.Generate(), s.now(), input.Amount, input.Description)
	if err != nil {
		return nil, err
	}

	if err := s.save(ctx); err != nil {
		return nil, err
	}

	return &MutationResult{
		Transaction: tx,
		Balance:     wallet.Balance,
	}, nil
}

// Balance returns the current balance of a wallet.
func (s *WalletStore) Balance(ctx context.Context, name string) (decimal.Decimal, error) {
	wallet, err := s.get(name)
	if err != nil {
		return decimal.Zero, err
	}
	return wallet.Balance, nil
}

// History returns the transactions of a wallet in chronological order with
// running balances recomputed by replay.
func (s *WalletStore) History(ctx context.Context, name string) ([]domain.HistoryEntry, error) {
	wallet, err := s.get(name)
	if err != nil {
		return nil, err
	}
	return domain.Replay(wallet.Transactions), nil
}

// WalletSummary is a wallet name with its current balance.
type WalletSummary struct {
	Name    string
	Balance decimal.Decimal
}

// List returns all wallets ordered by name.
// It returns domain.ErrNoWallets when the store is empty.
func (s *WalletStore) List(ctx context.Context) ([]WalletSummary, error) {
	if len(s.wallets) == 0 {
		return nil, domain.ErrNoWallets
	}

	summaries := make([]WalletSummary, 0, len(s.wallets))
	for name, wallet := range s.wallets {
		summaries = append(summaries, WalletSummary{Name: name, Balance: wallet.Balance})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Name < summaries[j].Name
	})
	return summaries, nil
}

func (s *WalletStore) get(name string) (*domain.Wallet, error) {
	wallet, ok := s.wallets[name]
	if !ok {
		return nil, domain.NewWalletError(name, domain.ErrWalletNotFound)
	}
	return wallet, nil
}

func (s *WalletStore) save(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultSaveTimeout)
	defer cancel()

	if err := s.repo.Save(ctx, s.wallets); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	s.logger.Debug().Int("wallets", len(s.wallets)).Msg("wallets saved")
	return nil
}
