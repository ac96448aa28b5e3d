package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"piggy/internal/ledger"
	"piggy/internal/storage"
)

var upgradeYes bool

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Record an upgrade to the pro plan",
	Long: `upgrade records the result of a completed purchase flow by setting the
pro flag. Purchase validation itself happens outside piggy; once set, the
flag is never reset.`,
	Args: cobra.NoArgs,
	RunE: runUpgrade,
}

func init() {
	upgradeCmd.Flags().BoolVarP(&upgradeYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runUpgrade(cmd *cobra.Command, args []string) error {
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

	if store.Pro() {
		fmt.Println("Already on the pro plan.")
		return nil
	}

	if !upgradeYes {
		reader := bufio.NewReader(os.Stdin)
		answer, err := promptLine(reader, "Upgrade to the pro plan? [y/N]", os.Stdout)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Input closed; upgrade cancelled.")
			os.Exit(1)
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
		default:
			fmt.Println("Upgrade cancelled.")
			return nil
		}
	}

	if err := store.SetPro(true); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Println("Upgraded to pro. Thank you!")
	return nil
}
