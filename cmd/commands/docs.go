package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	cmd "github.com/clockworkempire/hostnet/cmd"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const defaultDocsTarget = "./hostnet-docs"

var stdoutIsTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }

var docsCmd = &cobra.Command{
	Use:   "docs <command>",
	Short: "Work with the bundled theme documentation",
	Long:  `HostNet Theme Documentation, shipped with the CLI.`,
	Example: `  hostnet docs extract           # Extract to ./hostnet-docs
  hostnet docs extract ./docs    # Extract to custom path
  hostnet docs list              # Show available docs
  hostnet docs show INDEX        # Read a doc in the terminal`,
}

var docsExtractCmd = &cobra.Command{
	Use:     "extract [path]",
	Aliases: []string{"unpack"},
	Short:   "Copy docs to local directory (default: ./hostnet-docs)",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		target := defaultDocsTarget
		if len(args) > 0 {
			target = args[0]
		}
		src, err := bundle().Docs()
		if err != nil {
			return err
		}
		if err := cmd.CopyTree(src, target); err != nil {
			return fmt.Errorf("extract docs: %w", err)
		}
		abs, err := cmd.ResolvePath(target)
		if err != nil {
			return err
		}

		out := c.OutOrStdout()
		fmt.Fprintf(out, "Documentation extracted to: %s\n", abs)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Files:")
		if err := printDocNames(out, target); err != nil {
			return err
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Start with: %s/INDEX.md\n", target)
		return nil
	},
}

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available documentation",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		dir, err := bundle().Docs()
		if err != nil {
			return err
		}
		out := c.OutOrStdout()
		fmt.Fprintln(out, "Available documentation:")
		fmt.Fprintln(out)
		return printDocNames(out, dir)
	},
}

var docsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show bundled docs location",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		fmt.Fprintln(c.OutOrStdout(), bundle().DocsDir())
		return nil
	},
}

var docsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Render a bundled doc in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		dir, err := bundle().Docs()
		if err != nil {
			return err
		}
		path := filepath.Join(dir, args[0]+".md")
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return cmd.Fail(cmd.ErrDocNotFound, "No such doc: "+args[0],
					"Run `hostnet docs list` to see available docs.")
			}
			return fmt.Errorf("read doc: %w", err)
		}

		out := c.OutOrStdout()
		if !stdoutIsTerminal() {
			_, err := out.Write(data)
			return err
		}
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
		if err != nil {
			return fmt.Errorf("create renderer: %w", err)
		}
		rendered, err := r.Render(string(data))
		if err != nil {
			return fmt.Errorf("render doc: %w", err)
		}
		_, err = io.WriteString(out, rendered)
		return err
	},
}

func bundle() cmd.Bundle {
	return cmd.Bundle{Root: cmd.LoadSettings().BundleDir}
}

func printDocNames(w io.Writer, dir string) error {
	names, err := cmd.DocNames(dir)
	if err != nil {
		return err
	}
	for _, n := range names {
		fmt.Fprintf(w, "  - %s\n", n)
	}
	return nil
}

func init() {
	docsCmd.AddCommand(docsExtractCmd, docsListCmd, docsPathCmd, docsShowCmd)
	cmd.RootCmd.AddCommand(docsCmd)
}
