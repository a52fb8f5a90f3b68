package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	cmd "github.com/clockworkempire/hostnet/cmd"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var newExample bool

var (
	stdinIsTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	promptThemeName = askThemeName
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new theme",
	Long: `Create a new theme directory from a bundled starter template.
The blank scaffold is used unless --example is given.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(c *cobra.Command, args []string) error {
		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		if name == "" && stdinIsTerminal() {
			var err error
			if name, err = promptThemeName(); err != nil {
				return err
			}
		}
		if name == "" {
			return cmd.Fail(cmd.ErrMissingArgument, "Please provide a theme name",
				"Usage: hostnet new <name> [--example]")
		}

		target, err := cmd.ResolvePath(name)
		if err != nil {
			return err
		}
		if _, err := os.Lstat(target); err == nil {
			return cmd.Fail(cmd.ErrPathAlreadyExists, "Directory already exists: "+name)
		}

		starter := "blank"
		if newExample {
			starter = "minimal"
		}
		bundle := cmd.Bundle{Root: cmd.LoadSettings().BundleDir}
		src, err := bundle.Starter(starter)
		if err != nil {
			return err
		}
		if err := cmd.CopyTree(src, target); err != nil {
			return fmt.Errorf("create theme: %w", err)
		}

		out := c.OutOrStdout()
		fmt.Fprintf(out, "Created new theme: %s\n", name)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Next steps:")
		fmt.Fprintf(out, "  cd %s\n", name)
		fmt.Fprintln(out, "  hostnet dev")
		return nil
	},
}

func askThemeName() (string, error) {
	var name string
	err := huh.NewInput().
		Title("Theme name").
		Placeholder("my-theme").
		Value(&name).
		Validate(func(s string) error {
			s = strings.TrimSpace(s)
			if s == "" {
				return errors.New("name is required")
			}
			if strings.ContainsRune(s, filepath.Separator) {
				return errors.New("name must not contain a path separator")
			}
			return nil
		}).
		Run()
	if err != nil {
		return "", fmt.Errorf("prompt for theme name: %w", err)
	}
	return strings.TrimSpace(name), nil
}

func init() {
	newCmd.Flags().BoolVar(&newExample, "example", false, "use the full example theme instead of the blank scaffold")
	cmd.RootCmd.AddCommand(newCmd)
}
