package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"piggy/internal/config"
	"piggy/internal/datecalc"
	"piggy/internal/ledger"
	"piggy/internal/storage"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's draw and overall totals",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	now := time.Now()

	base, err := storage.BaseDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	store, err := ledger.Open(base)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	todayKey := datecalc.DayKey(now)
	if entry, ok := store.Entry(todayKey); ok {
		fmt.Printf("Today (%s): saved %s\n", todayKey, formatAmount(cfg.Currency, entry.Amount))
		if entry.Diary != "" {
			fmt.Printf("  Diary: %s\n", entry.Diary)
		}
		until := datecalc.Midnight(now).Sub(now)
		fmt.Printf("Next draw available in %s.\n", formatUntil(until))
	} else {
		fmt.Println("No draw yet today. Run `piggy draw`.")
	}

	if days := store.DaysSaved(); days > 0 {
		fmt.Printf("Total: %s over %d day(s).\n", formatAmount(cfg.Currency, store.TotalSaved()), days)
	}
	if store.Pro() {
		fmt.Println("Plan: pro")
	}
	return nil
}

// formatUntil renders a duration as "5h 12m" (or "12m" under an hour).
func formatUntil(d time.Duration) string {
	minutes := int(d.Minutes())
	h := minutes / 60
	m := minutes % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
