package commands

import (
	cmd "github.com/clockworkempire/hostnet/cmd"
	"github.com/spf13/cobra"
)

var envCmd = &cobra.Command{
	Use:   "env <subcommand>",
	Short: "Manage environments (production, staging, local)",
	Long: `Manage the environments saved in ~/.hostnet.yml.

Subcommands:
  list               List all environments
  show [name]        Show environment details
  use <name>         Set the default environment
  add <name>         Add a new environment
  remove <name>      Remove an environment`,
	DisableFlagParsing: true,
	RunE: func(_ *cobra.Command, args []string) error {
		return cmd.RunDocker(cmd.Invocation{
			Command:      "env",
			Args:         args,
			ErrorContext: "manage environments",
		}, cmd.LoadSettings().Image)
	},
}

func init() {
	cmd.RootCmd.AddCommand(envCmd)
}
