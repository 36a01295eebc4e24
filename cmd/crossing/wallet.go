package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/storage"
)

var flagLedgerLimit int

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Show coin balance and recent credits",
	Long: `Display the coin balance earned from finished runs and the most
recent ledger entries.

Examples:
  crossing wallet
  crossing wallet --limit 50`,
	Args: cobra.NoArgs,
	Run:  runWallet,
}

func init() {
	walletCmd.Flags().IntVar(&flagLedgerLimit, "limit", 10, "Number of ledger entries to show")
}

func runWallet(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	balance, err := store.Balance()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading balance: %v\n", err)
		return
	}
	fmt.Printf("Balance: %d coins\n", balance)

	ledger, err := store.Ledger(flagLedgerLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger: %v\n", err)
		return
	}
	if len(ledger) == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("  %-16s  %-18s  %6s  %s\n", "Date", "Game", "Amount", "Reason")
	fmt.Printf("  %-16s  %-18s  %6s  %s\n", "----", "----", "------", "------")
	for _, e := range ledger {
		fmt.Printf("  %-16s  %-18s  %+6d  %s\n", e.CreatedAt.Format("2006-01-02 15:04"), e.GameID, e.Amount, e.Reason)
	}
}
