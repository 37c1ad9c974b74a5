package luhn

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON          bool
	flagAlphanumeric  bool
	flagNoColor       bool
	flagNoUpdateCheck bool
	flagSelfUpdate    bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the luhn CLI.
var rootCmd = &cobra.Command{
	Use:           "luhn",
	Short:         "Check and complete Luhn sequences",
	Long:          "luhn validates card-style number sequences against the Luhn formula, computes check digits, and generates fresh valid sequences. A base-36 mode covers alphanumeric identifiers such as ISINs.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the luhn CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagAlphanumeric, "alphanumeric", false, "base-36 mode: accept uppercase A-Z (ISIN-style input)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVar(&flagNoUpdateCheck, "no-update-check", false, "disable update check")
	rootCmd.PersistentFlags().BoolVar(&flagSelfUpdate, "self-update", false, "update luhn to the latest release")
}
