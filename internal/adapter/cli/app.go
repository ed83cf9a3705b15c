// Package cli implements the wallet command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iho/walletledger/internal/adapter/repository/jsonfile"
	"github.com/iho/walletledger/internal/infrastructure/config"
	"github.com/iho/walletledger/internal/infrastructure/logger"
	"github.com/iho/walletledger/internal/infrastructure/metrics"
	"github.com/iho/walletledger/internal/usecase"
)

// App runs exactly one wallet command per process.
type App struct {
	cfg     *config.Config
	metrics *metrics.Metrics
	stdout  io.Writer
	stderr  io.Writer
	now     func() time.Time

	logger zerolog.Logger
	money  *MoneyFormatter
	store  *usecase.WalletStore
}

// NewApp creates a new App writing command output to stdout and
// diagnostics to stderr.
func NewApp(cfg *config.Config, m *metrics.Metrics, stdout, stderr io.Writer) *App {
	return &App{
		cfg:     cfg,
		metrics: m,
		stdout:  stdout,
		stderr:  stderr,
		now:     time.Now,
		logger:  zerolog.Nop(),
	}
}

// Execute runs the command line in args and returns the process exit code.
func (a *App) Execute(ctx context.Context, args []string) int {
	root := a.RootCommand()
	root.SetArgs(args)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	err := root.ExecuteContext(ctx)
	a.flushMetrics(ctx)

	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// RootCommand builds the command tree.
func (a *App) RootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wallet",
		Short:         "A simple wallet ledger CLI",
		Long:          `Track named wallets, their balances and transaction history in a local JSON file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfg.DataFile, "data-file", a.cfg.DataFile, "Path to the wallets JSON file")
	rootCmd.PersistentFlags().StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		a.createCmd(),
		a.creditCmd(),
		a.debitCmd(),
		a.balanceCmd(),
		a.historyCmd(),
		a.listCmd(),
		a.reconcileCmd(),
	)

	return rootCmd
}

// open wires the logger, formatter and store once flags are parsed, then
// loads the wallets file.
func (a *App) open(ctx context.Context) error {
	a.logger = logger.New(logger.Config{
		Level:  a.cfg.LogLevel,
		Format: a.cfg.LogFormat,
		Output: a.stderr,
	})

	money, err := NewMoneyFormatter(a.cfg.Currency)
	if err != nil {
		return err
	}
	a.money = money

	repo := jsonfile.NewWalletRepository(a.cfg.DataFile, jsonfile.NewRetrier(a.cfg.SaveRetries, a.logger))
	a.store = usecase.NewWalletStore(repo, jsonfile.NewULIDGenerator(),
		usecase.WithLogger(a.logger.With().Str("file", repo.Path()).Logger()),
		usecase.WithClock(a.now),
	)

	return a.store.Load(ctx)
}

// run wraps a command body so every outcome is counted.
func (a *App) run(operation string, fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if a.metrics != nil {
			a.metrics.Operations.WithLabelValues(operation, resultLabel(err)).Inc()
		}
		return err
	}
}

func (a *App) flushMetrics(ctx context.Context) {
	if a.metrics == nil || a.cfg.MetricsTextfile == "" {
		return
	}

	if a.store != nil {
		wallets, _ := a.store.List(ctx)
		a.metrics.WalletsTotal.Set(float64(len(wallets)))
		for _, w := range wallets {
			a.metrics.WalletBalance.WithLabelValues(w.Name).Set(w.Balance.InexactFloat64())
		}
	}

	if err := a.metrics.WriteTextfile(a.cfg.MetricsTextfile); err != nil {
		a.logger.Warn().Err(err).Str("path", a.cfg.MetricsTextfile).Msg("failed to write metrics textfile")
	}
}
