package cli

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/anjalxbt/mooncap/internal/config"
	"github.com/anjalxbt/mooncap/internal/dex"
	"github.com/anjalxbt/mooncap/internal/errors"
	"github.com/anjalxbt/mooncap/internal/watch"
)

// watchCommand starts the TUI dashboard.
func watchCommand(cmd *cobra.Command) error {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, cfg)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrTerm,
			"Standard output is not a terminal",
			"Run mooncap in an interactive terminal")
	}

	client := dex.NewClient()
	app := watch.NewApp(cfg)
	model := watch.NewModel(app, client)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrTerm,
			"Dashboard terminated unexpectedly",
			"Check terminal compatibility (TERM environment variable)")
	}

	return nil
}

// applyFlagOverrides layers explicitly-set flags over the loaded config.
// Unset flags leave the file values alone.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("pair") {
		cfg.PairAddress = pairFlag
	}
	if cmd.Flags().Changed("chain") {
		cfg.Chain = config.NormalizeChain(chainFlag)
	}
	if cmd.Flags().Changed("target") && targetFlag > 0 {
		cfg.TargetMarketCap = targetFlag
	}
	if cmd.Flags().Changed("interval") && intervalFlag > 0 {
		cfg.IntervalSeconds = intervalFlag
	}
	if cmd.Flags().Changed("alarm") {
		cfg.AlarmFile = alarmFileFlag
	}
	if cmd.Flags().Changed("alarm-duration") && alarmDurationFlag > 0 {
		cfg.AlarmDurationSeconds = alarmDurationFlag
	}
}
