package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iho/walletledger/internal/domain"
	"github.com/iho/walletledger/internal/usecase"
)

func (a *App) createCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new empty wallet",
		Args:  cobra.ExactArgs(1),
		RunE: a.run("create", func(cmd *cobra.Command, args []string) error {
			wallet, err := a.store.Create(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wallet '%s' created successfully\n", wallet.Name)
			return nil
		}),
	}
}

func (a *App) creditCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "credit <wallet> <amount>",
		Short: "Add funds to a wallet",
		Args:  cobra.ExactArgs(2),
		RunE: a.run("credit", func(cmd *cobra.Command, args []string) error {
			amount, err := domain.ParseAmount(args[1])
			if err != nil {
				return err
			}

			result, err := a.store.Credit(cmd.Context(), usecase.MutationInput{
				Wallet:      args[0],
				Amount:      amount,
				Description: description,
			})
			if err != nil {
				return err
			}
			a.observeAmount("credit", result)

			fmt.Fprintf(cmd.OutOrStdout(), "Credited %s to wallet '%s'. New balance: %s\n",
				a.money.Format(amount), args[0], a.money.Format(result.Balance))
			return nil
		}),
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Transaction description")
	return cmd
}

func (a *App) debitCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "debit <wallet> <amount>",
		Short: "Withdraw funds from a wallet",
		Args:  cobra.ExactArgs(2),
		RunE: a.run("debit", func(cmd *cobra.Command, args []string) error {
			amount, err := domain.ParseAmount(args[1])
			if err != nil {
				return err
			}

			result, err := a.store.Debit(cmd.Context(), usecase.MutationInput{
				Wallet:      args[0],
				Amount:      amount,
				Description: description,
			})
			if err != nil {
				return err
			}
			a.observeAmount("debit", result)

			fmt.Fprintf(cmd.OutOrStdout(), "Debited %s from wallet '%s'. New balance: %s\n",
				a.money.Format(amount), args[0], a.money.Format(result.Balance))
			return nil
		}),
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Transaction description")
	return cmd
}

func (a *App) balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance <wallet>",
		Short: "Show the balance of a wallet",
		Args:  cobra.ExactArgs(1),
		RunE: a.run("balance", func(cmd *cobra.Command, args []string) error {
			balance, err := a.store.Balance(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wallet '%s' balance: %s\n", args[0], a.money.Format(balance))
			return nil
		}),
	}
}

func (a *App) historyCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "history <wallet>",
		Short: "Show the transaction history of a wallet",
		Args:  cobra.ExactArgs(1),
		RunE: a.run("history", func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(output); err != nil {
				return err
			}

			entries, err := a.store.History(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if output == formatJSON {
				return printJSON(cmd.OutOrStdout(), HistoryFromDomain(entries))
			}

			if len(entries) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No transactions found for wallet '%s'\n", args[0])
				return nil
			}
			renderHistory(cmd.OutOrStdout(), args[0], entries, a.money)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&output, "output", "o", formatTable, "Output format (table, json)")
	return cmd
}

func (a *App) listCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all wallets with their balances",
		Args:  cobra.NoArgs,
		RunE: a.run("list", func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(output); err != nil {
				return err
			}

			wallets, err := a.store.List(cmd.Context())
			if errors.Is(err, domain.ErrNoWallets) {
				if output == formatJSON {
					return printJSON(cmd.OutOrStdout(), []WalletResponse{})
				}
				fmt.Fprintln(cmd.OutOrStdout(), "No wallets found. Create one with 'wallet create <name>'")
				return nil
			}
			if err != nil {
				return err
			}

			if output == formatJSON {
				return printJSON(cmd.OutOrStdout(), WalletsFromSummaries(wallets))
			}
			renderWallets(cmd.OutOrStdout(), wallets, a.money)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&output, "output", "o", formatTable, "Output format (table, json)")
	return cmd
}

func (a *App) reconcileCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Check that stored balances match transaction history",
		Args:  cobra.NoArgs,
		RunE: a.run("reconcile", func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(output); err != nil {
				return err
			}

			report, err := a.store.Reconcile(cmd.Context())
			if err != nil {
				return err
			}

			if output == formatJSON {
				if err := printJSON(cmd.OutOrStdout(), ReconciliationFromReport(report)); err != nil {
					return err
				}
			} else {
				renderReconciliation(cmd.OutOrStdout(), report, a.money)
			}

			if !report.Consistent() {
				return usecase.ErrInconsistentLedger
			}
			return nil
		}),
	}

	cmd.Flags().StringVarP(&output, "output", "o", formatTable, "Output format (table, json)")
	return cmd
}

func (a *App) observeAmount(operation string, result *usecase.MutationResult) {
	if a.metrics == nil {
		return
	}
	a.metrics.OperationAmount.WithLabelValues(operation).Add(result.Transaction.Amount.InexactFloat64())
}
