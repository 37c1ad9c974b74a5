package luhn

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/varalys/luhn/internal/engine"
	"github.com/varalys/luhn/internal/report"
)

var (
	flagAppend bool
	flagCopy   bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "checksum [payload]...",
		Short: "Compute the Luhn check digit for payloads",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runChecksum,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().BoolVar(&flagAppend, "append", false, "print the payload with the check digit appended")
	cmd.Flags().BoolVar(&flagCopy, "copy", false, "copy the completed sequence to the clipboard (single payload)")
}

func runChecksum(_ *cobra.Command, args []string) error {
	gcfg, lcfg := loadConfigs()
	alphanumeric := pickBool(flagAlphanumeric, lcfg.Alphanumeric, gcfg.Alphanumeric)
	jsonOut := pickBool(flagJSON, lcfg.JSON, gcfg.JSON)

	if flagCopy && len(args) != 1 {
		return fmt.Errorf("--copy takes exactly one payload, got %d", len(args))
	}

	checksum := engine.Checksum
	if alphanumeric {
		checksum = engine.ChecksumAlphanumeric
	}

	results := make([]report.Result, 0, len(args))
	for _, payload := range args {
		d, err := checksum([]byte(payload))
		if err != nil {
			if !jsonOut {
				return err
			}
			results = append(results, report.Result{Input: payload, Err: err.Error()})
			continue
		}
		full := payload + string(d)
		results = append(results, report.Result{Input: payload, Valid: true, CheckDigit: string(d), Sequence: full})
		if !jsonOut {
			if flagAppend {
				fmt.Println(full)
			} else {
				fmt.Printf("%c\n", d)
			}
		}
		// Clipboard errors should not fail the command
		if flagCopy {
			if err := clipboard.WriteAll(full); err != nil {
				_, _ = fmt.Fprintln(os.Stderr, "clipboard warning:", err)
			} else {
				_, _ = fmt.Fprintln(os.Stderr, "copied", full, "to clipboard")
			}
		}
	}

	if jsonOut {
		if err := report.MarshalResults(os.Stdout, results); err != nil {
			return err
		}
		for _, r := range results {
			if r.Err != "" {
				os.Exit(2)
			}
		}
	}
	return nil
}
