package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/iho/walletledger/internal/domain"
	"github.com/iho/walletledger/internal/usecase"
)

const (
	historyDateFormat    = "2006-01-02 15:04:05"
	maxDescriptionLength = 40
)

// Output formats accepted by --output.
const (
	formatTable = "table"
	formatJSON  = "json"
)

func validateFormat(format string) error {
	switch format {
	case formatTable, formatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (want %s or %s)", format, formatTable, formatJSON)
	}
}

// renderHistory writes the history table of a wallet.
func renderHistory(w io.Writer, name string, entries []domain.HistoryEntry, money *MoneyFormatter) {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Timestamp.UTC().Format(historyDateFormat),
			strings.ToUpper(string(e.Type)),
			money.Format(e.Amount),
			truncate(e.Description, maxDescriptionLength),
			money.Format(e.RunningBalance),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Date", "Type", "Amount", "Description", "Balance").
		Rows(rows...)

	fmt.Fprintf(w, "Transaction history for wallet '%s':\n", name)
	fmt.Fprintln(w, t.Render())
}

// renderWallets writes the wallet list table.
func renderWallets(w io.Writer, wallets []usecase.WalletSummary, money *MoneyFormatter) {
	rows := make([][]string, 0, len(wallets))
	for _, s := range wallets {
		rows = append(rows, []string{s.Name, money.Format(s.Balance)})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Wallet", "Balance").
		Rows(rows...)

	fmt.Fprintln(w, "Available wallets:")
	fmt.Fprintln(w, t.Render())
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	if limit <= 3 {
		return string(r[:limit])
	}
	return string(r[:limit-3]) + "..."
}

// renderReconciliation writes the outcome of a consistency check.
func renderReconciliation(w io.Writer, report *usecase.ReconciliationReport, money *MoneyFormatter) {
	if report.Consistent() {
		fmt.Fprintf(w, "Consistency check PASSED: %d of %d wallets reconciled\n", report.ReconciledWallets, report.TotalWallets)
		return
	}

	rows := make([][]string, 0, len(report.Discrepancies))
	for _, d := range report.Discrepancies {
		negative := "no"
		if d.WentNegative {
			negative = "yes"
		}
		rows = append(rows, []string{
			d.Wallet,
			money.Format(d.RecordedBalance),
			money.Format(d.CalculatedBalance),
			money.Format(d.Difference),
			negative,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Wallet", "Recorded", "Calculated", "Difference", "Overdrawn").
		Rows(rows...)

	fmt.Fprintf(w, "Consistency check FAILED: %d of %d wallets reconciled\n", report.ReconciledWallets, report.TotalWallets)
	fmt.Fprintln(w, t.Render())
}
