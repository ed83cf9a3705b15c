// Command wallet is a local command-line ledger of named wallets.
//
// Usage:
//
//	wallet create alice
//	wallet credit alice 100 -d "salary"
//	wallet debit alice 40
//	wallet balance alice
//	wallet history alice
//	wallet list
//	wallet reconcile
//
// State lives in a single JSON file (WALLET_DATA_FILE, default ./wallets.json)
// that is rewritten after every successful change. Running two commands
// against the same file at the same time is unsupported: the last writer wins.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/iho/walletledger/internal/adapter/cli"
	"github.com/iho/walletledger/internal/infrastructure/config"
	"github.com/iho/walletledger/internal/infrastructure/metrics"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:]))
}

func run(ctx context.Context, args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load configuration: %v\n", err)
		return 1
	}

	app := cli.NewApp(cfg, metrics.New(), os.Stdout, os.Stderr)
	return app.Execute(ctx, args)
}
