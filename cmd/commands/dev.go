package commands

import (
	"fmt"

	cmd "github.com/clockworkempire/hostnet/cmd"
	"github.com/spf13/cobra"
)

var devFlags = cmd.FlagSchema{
	WithValue: []string{"--port"},
	Boolean:   []string{"--help"},
}

var devCmd = &cobra.Command{
	Use:   "dev [path]",
	Short: "Start local development server (offline mode)",
	Long: `Start the offline theme development server for the theme at path
(default: current directory).

Options:
  --port <port>      Port to listen on (default: 4000)`,
	DisableFlagParsing: true,
	RunE: func(c *cobra.Command, args []string) error {
		settings := cmd.LoadSettings()

		themePath, pass := cmd.ClassifyArgs(args, devFlags)
		port, pass, ok := cmd.TakeFlag(pass, "--port")
		if !ok {
			port = settings.DevPort
		}

		resolved, err := cmd.ResolveTheme(themePath, false)
		if err != nil {
			return err
		}

		out := c.OutOrStdout()
		fmt.Fprintln(out, "Starting HostNet theme dev server...")
		fmt.Fprintf(out, "Theme: %s\n", resolved)
		fmt.Fprintf(out, "URL: http://localhost:%s\n", port)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Press Ctrl+C to stop")
		fmt.Fprintln(out)

		return cmd.RunDocker(cmd.Invocation{
			Command:      "dev",
			ThemePath:    resolved,
			Args:         pass,
			Ports:        []cmd.PortMapping{{Host: port, Container: "4000"}},
			Minimal:      true,
			ErrorContext: "run the development server",
		}, settings.Image)
	},
}

func init() {
	cmd.RootCmd.AddCommand(devCmd)
}
