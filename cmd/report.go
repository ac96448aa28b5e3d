package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"piggy/internal/config"
	"piggy/internal/datecalc"
	"piggy/internal/ledger"
	"piggy/internal/storage"
)

var reportFormat string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show savings totals aggregated by month",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFormat, "format", "md", "Output format: md, csv")
}

func runReport(cmd *cobra.Command, args []string) error {
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

	// Aggregate by month.
	totals := map[string]int{}
	counts := map[string]int{}
	for _, e := range store.History() {
		month := datecalc.MonthLabel(e.Date)
		totals[month] += e.Amount
		counts[month]++
	}

	months := make([]string, 0, len(totals))
	for m := range totals {
		months = append(months, m)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	switch reportFormat {
	case "csv":
		fmt.Println("month,days,total")
		for _, m := range months {
			fmt.Printf("%s,%d,%d\n", m, counts[m], totals[m])
		}
		fmt.Printf("total,%d,%d\n", store.DaysSaved(), store.TotalSaved())
	default: // md
		if len(months) == 0 {
			fmt.Println("No entries yet.")
			return nil
		}
		fmt.Println("| Month   | Days | Total |")
		fmt.Println("|---------|------|-------|")
		for _, m := range months {
			fmt.Printf("| %s | %4d | %s |\n", m, counts[m], formatAmount(cfg.Currency, totals[m]))
		}
		fmt.Printf("\nTotal: %s over %d day(s).\n",
			formatAmount(cfg.Currency, store.TotalSaved()), store.DaysSaved())
	}

	return nil
}
