package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/anjalxbt/mooncap/internal/config"
	"github.com/anjalxbt/mooncap/internal/errors"
)

// init command flags
var (
	initForce  bool
	initGlobal bool
)

// initCmd creates a new .mooncap.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .mooncap.yaml configuration",
	Long: `Initialize a new MoonCap configuration file.

Guides you through the pair address, chain, target market cap, and check
interval with interactive prompts, then writes .mooncap.yaml to the
current directory (or the global config with --global).

Examples:
  mooncap init
  mooncap init --force
  mooncap init --global`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce, initGlobal)
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initGlobal, "global", false, "write to ~/.config/mooncap/config.yaml")

	rootCmd.AddCommand(initCmd)
}

// initCommand runs the interactive configuration prompts and writes the
// config file.
func initCommand(force, global bool) error {
	configPath, err := initConfigPath(global)
	if err != nil {
		return err
	}

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !force {
		var overwrite bool

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", configPath)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	defaults := config.Default()
	var pairAddress, chain, targetStr, intervalStr, alarmFile string
	chain = defaults.Chain
	targetStr = strconv.FormatFloat(defaults.TargetMarketCap, 'f', 0, 64)
	intervalStr = strconv.FormatUint(defaults.IntervalSeconds, 10)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Pair or token address").
				Description("The DEX pair or token contract address to watch").
				Placeholder("7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU").
				Value(&pairAddress).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("pair address is required")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Chain").
				Description("Blockchain identifier (solana, ethereum, bsc, ...)").
				Value(&chain),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Target market cap (USD)").
				Description("The alarm fires when market cap reaches this").
				Value(&targetStr).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil || v <= 0 {
						return fmt.Errorf("enter a positive number")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Check interval (seconds)").
				Description("How often to poll the API").
				Value(&intervalStr).
				Validate(func(s string) error {
					v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
					if err != nil || v == 0 {
						return fmt.Errorf("enter a positive whole number")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Alarm sound file (optional)").
				Description("Path to an audio file; empty uses the terminal bell").
				Placeholder("~/sounds/alarm.mp3 (leave empty to skip)").
				Value(&alarmFile),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility")
	}

	cfg := config.Default()
	cfg.PairAddress = strings.TrimSpace(pairAddress)
	cfg.Chain = config.NormalizeChain(chain)
	cfg.TargetMarketCap = config.ParseTarget(targetStr)
	cfg.IntervalSeconds = config.ParseIntervalSeconds(intervalStr)
	cfg.AlarmFile = strings.TrimSpace(alarmFile)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	header := `# MoonCap configuration
# Run 'mooncap' to start watching
# Flags like --target and --interval override these per run

`
	content := header + string(data)

	if dir := filepath.Dir(configPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to create config directory: "+dir,
				"Check directory permissions")
		}
	}

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Printf("✓ Created %s\n\n", configPath)
	fmt.Println("Next steps:")
	fmt.Println("  mooncap           - Start the dashboard")
	fmt.Println("  mooncap --target  - Override the target for one run")

	return nil
}

// initConfigPath resolves where the init command writes its config.
func initConfigPath(global bool) (string, error) {
	if !global {
		return filepath.Join(".", config.ConfigFileName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine home directory",
			"Set the HOME environment variable or drop --global")
	}
	return filepath.Join(home, config.GlobalConfigDir, config.GlobalConfigFile), nil
}
