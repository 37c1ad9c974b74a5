package luhn

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/varalys/luhn/internal/engine"
	"github.com/varalys/luhn/internal/report"
)

var (
	flagLength int
	flagCount  int
)

func init() {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random valid sequences",
		RunE:  runGenerate,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().IntVar(&flagLength, "length", 16, "total sequence length including the check digit")
	cmd.Flags().IntVar(&flagCount, "count", 1, "how many sequences to generate")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	gcfg, lcfg := loadConfigs()
	jsonOut := pickBool(flagJSON, lcfg.JSON, gcfg.JSON)

	// Resolve length: explicit CLI > local > global > CLI default
	length := flagLength
	if !cmd.Flags().Changed("length") {
		if v := pickInt(0, lcfg.GenerateLength, gcfg.GenerateLength); v != 0 {
			length = v
		}
	}
	if flagCount < 1 {
		return fmt.Errorf("count must be at least 1, got %d", flagCount)
	}

	results := make([]report.Result, 0, flagCount)
	for i := 0; i < flagCount; i++ {
		seq, err := engine.Generate(length)
		if err != nil {
			return err
		}
		if jsonOut {
			results = append(results, report.Result{
				Input:      seq[:len(seq)-1],
				Valid:      true,
				CheckDigit: seq[len(seq)-1:],
				Sequence:   seq,
			})
		} else {
			fmt.Println(seq)
		}
	}
	if jsonOut {
		return report.MarshalResults(os.Stdout, results)
	}
	return nil
}
