package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"piggy/internal/config"
	"piggy/internal/datecalc"
	"piggy/internal/ledger"
	"piggy/internal/session"
	"piggy/internal/storage"
)

var (
	drawDiary string
	drawYes   bool
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw today's savings amount",
	Args:  cobra.NoArgs,
	RunE:  runDraw,
}

func init() {
	drawCmd.Flags().StringVar(&drawDiary, "diary", "", "Diary note for today's entry")
	drawCmd.Flags().BoolVarP(&drawYes, "yes", "y", false, "Save the drawn amount without prompting")
}

func runDraw(cmd *cobra.Command, args []string) error {
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

	sess := session.New(store, time.Duration(cfg.SpinMillis)*time.Millisecond)

	fmt.Print("Shaking the piggy bank...")
	amount, err := sess.RequestDraw()
	if errors.Is(err, session.ErrAlreadyDrawnToday) {
		fmt.Println()
		fmt.Fprintln(os.Stderr, "Already drawn today. Come back tomorrow!")
		os.Exit(1)
	}
	if err != nil {
		fmt.Println()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Printf("\rToday's draw: %s          \n", formatAmount(cfg.Currency, amount))

	if drawDiary != "" {
		if err := sess.SetDraftDiary(drawDiary); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	if drawYes {
		return saveDraw(sess, cfg.Currency)
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		choice, err := promptLine(reader, "[s]ave  [d]iary  [r]edraw  [q]uit", os.Stdout)
		if err != nil {
			// Input closed: a draw is non-committal until saved.
			_ = sess.DiscardDraw()
			fmt.Fprintln(os.Stderr, "Input closed; draw discarded.")
			os.Exit(1)
		}

		switch strings.ToLower(choice) {
		case "s", "save", "":
			return saveDraw(sess, cfg.Currency)
		case "d", "diary":
			text, err := promptLine(reader, "Diary note:", os.Stdout)
			if err != nil {
				_ = sess.DiscardDraw()
				fmt.Fprintln(os.Stderr, "Input closed; draw discarded.")
				os.Exit(1)
			}
			if err := sess.SetDraftDiary(text); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
		case "r", "redraw":
			if err := sess.DiscardDraw(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			fmt.Print("Shaking again...")
			amount, err = sess.RequestDraw()
			if err != nil {
				fmt.Println()
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			fmt.Printf("\rNew draw: %s          \n", formatAmount(cfg.Currency, amount))
		case "q", "quit":
			_ = sess.DiscardDraw()
			fmt.Println("Draw discarded; nothing saved.")
			return nil
		default:
			fmt.Println("Please answer s, d, r or q.")
		}
	}
}

// saveDraw commits the pending draw and reports the result.
func saveDraw(sess *session.Session, currency string) error {
	entry, err := sess.Commit()
	if errors.Is(err, ledger.ErrConflict) {
		fmt.Fprintln(os.Stderr, "An entry for today already exists; nothing was overwritten.")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Saved %s for %s.\n", formatAmount(currency, entry.Amount), datecalc.DayKey(entry.Date))
	if entry.Diary != "" {
		fmt.Printf("  Diary: %s\n", entry.Diary)
	}
	return nil
}
