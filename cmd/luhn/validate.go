package luhn

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/varalys/luhn/internal/engine"
	"github.com/varalys/luhn/internal/report"
	"github.com/varalys/luhn/internal/update"
)

var flagQuiet bool

func init() {
	cmd := &cobra.Command{
		Use:   "validate [sequence]...",
		Short: "Check sequences against the Luhn formula",
		Long:  "Validate checks each sequence and reports VALID or INVALID. With no arguments it reads one sequence per line from stdin, so it composes with pipes.",
		RunE:  runValidate,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress per-sequence lines, keep the summary")
}

func runValidate(_ *cobra.Command, args []string) error {
	gcfg, lcfg := loadConfigs()
	alphanumeric := pickBool(flagAlphanumeric, lcfg.Alphanumeric, gcfg.Alphanumeric)
	noColor := pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor)
	jsonOut := pickBool(flagJSON, lcfg.JSON, gcfg.JSON)

	// Friendly banner before checking
	if !jsonOut {
		if !flagNoUpdateCheck {
			if latest, newer, _ := update.Check(version, false); newer && latest != "" {
				_, _ = fmt.Fprintf(os.Stderr, "(new version available: v%s)  run 'luhn --self-update' to upgrade\n", latest)
			}
		}
		if flagSelfUpdate && attemptSelfUpdate(os.Stderr) {
			return nil
		}
	}

	seqs := args
	if len(seqs) == 0 {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("no sequences given; pass them as arguments or pipe one per line on stdin")
		}
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				seqs = append(seqs, line)
			}
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}
	if len(seqs) == 0 {
		return fmt.Errorf("no sequences given")
	}

	results := make([]report.Result, 0, len(seqs))
	anyInvalid, anyMalformed := false, false
	for _, s := range seqs {
		r := checkSequence(s, alphanumeric)
		switch {
		case r.Err != "":
			anyMalformed = true
		case !r.Valid:
			anyInvalid = true
		}
		results = append(results, r)
	}

	if jsonOut {
		if err := report.MarshalResults(os.Stdout, results); err != nil {
			return err
		}
	} else {
		report.PrintResults(os.Stdout, results, report.PrintOptions{NoColor: noColor, Quiet: flagQuiet})
	}

	if anyMalformed {
		os.Exit(2)
	}
	if anyInvalid {
		os.Exit(1)
	}
	return nil
}

// checkSequence validates one sequence in the selected mode.
func checkSequence(seq string, alphanumeric bool) report.Result {
	validate := engine.Validate
	if alphanumeric {
		validate = engine.ValidateAlphanumeric
	}
	ok, err := validate([]byte(seq))
	if err != nil {
		return report.Result{Input: seq, Err: err.Error()}
	}
	return report.Result{Input: seq, Valid: ok}
}
