package commands

import (
	cmd "github.com/clockworkempire/hostnet/cmd"
	"github.com/spf13/cobra"
)

var connectFlags = cmd.FlagSchema{
	WithValue: []string{
		"--server-url", "-s",
		"--env", "-e",
		"--account", "-a",
	},
	Boolean: []string{"--open", "-o", "--help"},
}

var connectCmd = &cobra.Command{
	Use:   "connect [path]",
	Short: "Connect to HostNet Theme Editor (tunnel mode)",
	Long: `Start a tunnel between the theme at path (default: current directory)
and the HostNet Theme Editor.

Options:
  --env <name>       Environment to use (default: current)
  --server-url <url> HostNet server URL (default: https://hostnet.io)
  --account <id>     Account ID`,
	DisableFlagParsing: true,
	RunE: func(_ *cobra.Command, args []string) error {
		themePath, pass := cmd.ClassifyArgs(args, connectFlags)
		resolved, err := cmd.ResolveTheme(themePath, true)
		if err != nil {
			return err
		}
		return cmd.RunDocker(cmd.Invocation{
			Command:      "connect",
			ThemePath:    resolved,
			Args:         pass,
			ErrorContext: "run the tunnel client",
		}, cmd.LoadSettings().Image)
	},
}

func init() {
	cmd.RootCmd.AddCommand(connectCmd)
}
