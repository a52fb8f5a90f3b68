package commands

import (
	"fmt"

	cmd "github.com/clockworkempire/hostnet/cmd"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		image := cmd.LoadSettings().Image
		out := c.OutOrStdout()
		fmt.Fprintf(out, "hostnet %s\n", cmd.Version())
		fmt.Fprintf(out, "image:  %s\n", image)
		fmt.Fprintf(out, "local:  %s\n", cmd.ImageInfo(image))
		return nil
	},
}

func init() {
	cmd.RootCmd.AddCommand(versionCmd)
}
