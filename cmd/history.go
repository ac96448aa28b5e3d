package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"piggy/internal/config"
	"piggy/internal/datecalc"
	"piggy/internal/ledger"
	"piggy/internal/model"
	"piggy/internal/storage"
)

var (
	historyFormat string
	historyLimit  int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved entries, most recent first",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyFormat, "format", "md", "Output format: md, csv, json")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "Show at most n entries (0 = all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
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

	entries := store.History()
	if historyLimit > 0 && len(entries) > historyLimit {
		entries = entries[:historyLimit]
	}

	switch historyFormat {
	case "json":
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "error encoding JSON:", err)
			os.Exit(2)
		}
		fmt.Println(string(data))
	case "csv":
		printHistoryCSV(entries)
	default: // md
		printHistory(entries, cfg.Currency)
	}

	return nil
}

// printHistory renders entries as one line per day.
func printHistory(entries []model.Entry, currency string) {
	if len(entries) == 0 {
		fmt.Println("No entries yet.")
		return
	}
	for _, e := range entries {
		line := fmt.Sprintf("%s  %s", datecalc.DayKey(e.Date), formatAmount(currency, e.Amount))
		if e.Diary != "" {
			line += "  " + e.Diary
		}
		fmt.Println(line)
	}
}

func printHistoryCSV(entries []model.Entry) {
	fmt.Println("date,amount,diary")
	for _, e := range entries {
		fmt.Printf("%s,%d,%s\n",
			csvEscape(datecalc.DayKey(e.Date)),
			e.Amount,
			csvEscape(e.Diary),
		)
	}
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	needsQuote := false
	for _, c := range s {
		if c == ',' || c == '"' || c == '\n' || c == '\r' {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return s
	}
	// Escape internal double quotes by doubling them.
	escaped := ""
	for _, c := range s {
		if c == '"' {
			escaped += "\""
		}
		escaped += string(c)
	}
	return `"` + escaped + `"`
}
