package commands

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	cmd "github.com/clockworkempire/hostnet/cmd"
	"github.com/spf13/cobra"
)

var pushFlags = cmd.FlagSchema{
	WithValue: []string{
		"--config", "-c",
		"--token", "-t",
		"--url", "-u",
		"--account", "-a",
		"--theme-id",
		"--theme-name", "-n",
		"--env", "-e",
	},
	Boolean: []string{"--create", "--help"},
}

var pushCmd = &cobra.Command{
	Use:   "push [path]",
	Short: "Push theme to HostNet server",
	Long: `Push the theme at path (default: current directory) to a HostNet server.

Options:
  --url <url>        API URL (e.g., https://app.hostnet.com)
  --account <id>     Account ID (e.g., acct_xxx)
  --theme-id <id>    Theme ID to push to (e.g., theme_xxx)
  --theme-name <n>   Theme name when creating
  --token <token>    API token (or set HOSTNET_API_TOKEN env var)
  --config <file>    Config file (default: .hostnet.yml)
  --env <name>       Environment to use
  --create           Create the theme if it does not exist`,
	DisableFlagParsing: true,
	RunE: func(c *cobra.Command, args []string) error {
		themePath, pass := cmd.ClassifyArgs(args, pushFlags)
		resolved, err := cmd.ResolveTheme(themePath, true)
		if err != nil {
			return err
		}

		out := c.OutOrStdout()
		fmt.Fprintln(out, "Pushing theme to HostNet...")
		fmt.Fprintf(out, "Theme: %s\n", resolved)
		fmt.Fprintln(out)

		// The container only sees /theme, so the directory name is passed
		// along for a theme_name in the config file to override.
		return cmd.RunDocker(cmd.Invocation{
			Command:      "push",
			ThemePath:    resolved,
			Args:         pass,
			Env:          []cmd.EnvVar{cmd.Env("HOSTNET_THEME_NAME_FALLBACK", themeNameFromDir(resolved))},
			ErrorContext: "push themes",
		}, cmd.LoadSettings().Image)
	},
}

var (
	nameSeparators = regexp.MustCompile(`[-_]`)
	wordStart      = regexp.MustCompile(`\b\w`)
)

// themeNameFromDir turns "my-cool_theme" into "My Cool Theme".
func themeNameFromDir(dir string) string {
	name := nameSeparators.ReplaceAllString(filepath.Base(dir), " ")
	return wordStart.ReplaceAllStringFunc(name, strings.ToUpper)
}

func init() {
	cmd.RootCmd.AddCommand(pushCmd)
}
