package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Root command flags
var (
	configFlag        string
	pairFlag          string
	chainFlag         string
	targetFlag        float64
	intervalFlag      uint64
	alarmFileFlag     string
	alarmDurationFlag uint64
)

// rootCmd is the base command: running bare 'mooncap' starts the dashboard.
var rootCmd = &cobra.Command{
	Use:   "mooncap",
	Short: "Market-cap watcher and alarm for DEX trading pairs",
	Long: `MoonCap watches a single trading pair on DexScreener and renders a
live terminal dashboard: price, market cap, volume, liquidity, and a
market-cap trend sparkline.

When the market cap crosses the configured target, an alarm sounds until
stopped or its duration runs out.

Configuration comes from .mooncap.yaml (or ~/.config/mooncap/config.yaml),
overridable per run with flags. With no pair configured, an interactive
form opens on launch.

Examples:
  mooncap
  mooncap --pair 7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU
  mooncap --chain ethereum --target 500000 --interval 60`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")

	rootCmd.Flags().StringVar(&pairFlag, "pair", "", "pair or token contract address to watch")
	rootCmd.Flags().StringVar(&chainFlag, "chain", "", "chain identifier (e.g. solana, ethereum, bsc)")
	rootCmd.Flags().Float64Var(&targetFlag, "target", 0, "target market cap in USD")
	rootCmd.Flags().Uint64Var(&intervalFlag, "interval", 0, "seconds between API checks")
	rootCmd.Flags().StringVar(&alarmFileFlag, "alarm", "", "audio file to play when the target is hit")
	rootCmd.Flags().Uint64Var(&alarmDurationFlag, "alarm-duration", 0, "seconds the alarm sounds")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
