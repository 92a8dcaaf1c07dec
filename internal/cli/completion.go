package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/anjalxbt/mooncap/internal/errors"
)

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for mooncap.

Examples:
  # Bash
  mooncap completion bash > /etc/bash_completion.d/mooncap

  # Zsh
  mooncap completion zsh > "${fpath[1]}/_mooncap"

  # Fish
  mooncap completion fish > ~/.config/fish/completions/mooncap.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
