package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/sstucker/particles/pkg/ramp"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for particles.

To load completions:

Bash:
  $ source <(particles completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ particles completion bash > /etc/bash_completion.d/particles
  # macOS:
  $ particles completion bash > $(brew --prefix)/etc/bash_completion.d/particles

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ particles completion zsh > "${fpath[1]}/_particles"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ particles completion fish | source

  # To load completions for each session, execute once:
  $ particles completion fish > ~/.config/fish/completions/particles.fish

PowerShell:
  PS> particles completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> particles completion powershell > particles.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}

// completeGradients completes --gradient with the named gradients and their
// reversed variants.
func completeGradients(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, name := range ramp.Names() {
		for _, candidate := range []string{name, name + "_r"} {
			if strings.HasPrefix(candidate, strings.ToLower(toComplete)) {
				out = append(out, candidate)
			}
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// completeFixed returns a completion function for a fixed set of values.
func completeFixed(values ...string) cobra.CompletionFunc {
	return func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
