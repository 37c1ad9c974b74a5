package luhn

import (
	"github.com/spf13/cobra"

	"github.com/varalys/luhn/internal/tui"
)

func init() {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive checker with live verdicts",
		RunE: func(_ *cobra.Command, _ []string) error {
			gcfg, lcfg := loadConfigs()
			alphanumeric := pickBool(flagAlphanumeric, lcfg.Alphanumeric, gcfg.Alphanumeric)
			length := pickInt(0, lcfg.GenerateLength, gcfg.GenerateLength)
			return tui.Run(alphanumeric, length)
		},
	}
	rootCmd.AddCommand(cmd)
}
