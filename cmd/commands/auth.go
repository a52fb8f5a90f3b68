package commands

import (
	cmd "github.com/clockworkempire/hostnet/cmd"
	"github.com/spf13/cobra"
)

var authFlags = cmd.FlagSchema{
	WithValue: []string{"--server-url", "-s", "--env", "-e"},
	Boolean:   []string{"--logout", "--help"},
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authenticate with HostNet (save API key)",
	Long: `Authenticate with HostNet and save the API key in ~/.hostnet.yml.

Options:
  --env <name>       Environment to authenticate (default: current)
  --server-url <url> HostNet server URL (default: https://hostnet.io)
  --logout           Remove saved credentials`,
	DisableFlagParsing: true,
	RunE: func(_ *cobra.Command, args []string) error {
		// auth takes no path; a stray positional is dropped.
		_, pass := cmd.ClassifyArgs(args, authFlags)
		return cmd.RunDocker(cmd.Invocation{
			Command:      "auth",
			Args:         pass,
			ErrorContext: "run authentication",
		}, cmd.LoadSettings().Image)
	},
}

func init() {
	cmd.RootCmd.AddCommand(authCmd)
}
