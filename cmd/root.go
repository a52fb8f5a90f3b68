package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// cmdline is the argument list of the current Run. Unknown root flags are
// tolerated so they reach the unknown-command path, but cobra strips them
// from the args RunE receives.
var cmdline []string

var RootCmd = &cobra.Command{
	Use:   "hostnet <command> [options]",
	Short: "HostNet Theme Development CLI",
	Long: `HostNet Theme Development CLI

Runs the HostNet theme toolchain inside its Docker image. Theme compilation,
tunneling, authentication and pushes all happen in the container; this CLI
mounts your theme and configuration and forwards your flags.`,
	Example: `  hostnet new my-theme
  hostnet dev
  hostnet dev ./my-theme --port 3000
  hostnet connect ./my-theme
  hostnet auth
  hostnet env use staging
  hostnet connect --env staging ./my-theme
  hostnet push --url https://app.hostnet.com --account acct_xxx --theme-id theme_xxx

Documentation: https://github.com/clockworkempire/theme-dev`,
	Args:               cobra.ArbitraryArgs,
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(c *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = cmdline
		}
		if len(args) == 0 {
			return c.Help()
		}
		fmt.Fprintf(c.ErrOrStderr(), "Unknown command: %s\n", args[0])
		if err := c.Help(); err != nil {
			return err
		}
		return &ExitStatusError{Code: 1}
	},
}

func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

// Run executes the command line args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra reads os.Args when given nil.
		args = []string{}
	}
	cmdline = args
	RootCmd.SetArgs(args)
	RootCmd.SetOut(stdout)
	RootCmd.SetErr(stderr)
	err := RootCmd.Execute()
	if err != nil {
		report(stderr, err)
	}
	return ExitCode(err)
}

func init() {
	RootCmd.CompletionOptions.DisableDefaultCmd = true
	RootCmd.Version = Version()
	RootCmd.SetVersionTemplate("hostnet {{.Version}}\n")
}
