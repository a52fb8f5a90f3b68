package commands

import (
	"fmt"

	cmd "github.com/clockworkempire/hostnet/cmd"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Pull the latest Docker image",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		out := c.OutOrStdout()
		fmt.Fprintln(out, "Pulling latest HostNet theme dev server...")
		fmt.Fprintln(out)

		if err := cmd.PullImage(cmd.LoadSettings().Image); err != nil {
			return err
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Update complete!")
		return nil
	},
}

func init() {
	cmd.RootCmd.AddCommand(updateCmd)
}
