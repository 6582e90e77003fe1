package cmd

import (
	"io"
	"os"

	"github.com/harrison/treels/internal/decorate"
	"github.com/harrison/treels/internal/fsys"
	"github.com/harrison/treels/internal/terminal"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// Deps are the collaborators a listing runs against. Zero fields fall back
// to the real filesystem and the terminal behind the command's writers.
type Deps struct {
	FS fsys.Accessor
	// Terminal describes stdout. Nil inspects cmd.OutOrStdout().
	Terminal terminal.Terminal
	// DecoratorOptions inject the clock and working directory.
	DecoratorOptions []decorate.Option
}

// NewRootCommand creates and returns the root cobra command for treels
func NewRootCommand() *cobra.Command {
	return NewRootCommandWith(Deps{})
}

// NewRootCommandWith creates the root command over explicit collaborators.
func NewRootCommandWith(deps Deps) *cobra.Command {
	if deps.FS == nil {
		deps.FS = fsys.New()
	}

	flags := &listFlags{}
	cmd := &cobra.Command{
		Use:   "treels [flags] [path]",
		Short: "List a directory as a tree, table, grid or plain list",
		Long: `treels lists the contents of a directory in one of four layouts:
an indented tree (the default), one entry per line, a long table with
type, size and modification time, or a multi-column grid.

Entries can be filtered by name, sorted by name, size or time, and
decorated with icons, type indicators, hyperlinks and colors that
scale with age or size.

Defaults are read from $TREELS_CONFIG or ~/.config/treels/config.yaml;
command-line flags take precedence.`,
		Version: Version,
		Args:    validateArgs,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// main prints the error
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args, flags, deps)
		},
	}
	cmd.SetFlagErrorFunc(flagError)
	flags.register(cmd)

	return cmd
}

// terminalFor describes w: a real terminal when w is a file, otherwise a
// non-interactive one of unknown width.
func terminalFor(w io.Writer) terminal.Terminal {
	if f, ok := w.(*os.File); ok {
		return terminal.NewFile(f)
	}
	return terminal.Fixed{}
}
