// Package topics adds a markdown-based help topic command to a cobra CLI.
// Topics live in an fs.FS (usually embedded) and are rendered with
// glamour when stdout is a terminal.
package topics

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Extension is the file extension topics must carry.
const Extension = ".md"

// NewCommand builds a "topics" command over the given filesystem.
func NewCommand(fsys fs.FS, short string) *cobra.Command {
	return &cobra.Command{
		Use:       "topics [topic]",
		Short:     short,
		ValidArgs: names(fsys),
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return list(cmd, fsys)
			}
			return show(cmd, fsys, args[0])
		},
	}
}

func names(fsys fs.FS) []string {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Extension) {
			continue
		}
		out = append(out, strings.TrimSuffix(e.Name(), Extension))
	}
	sort.Strings(out)
	return out
}

func list(cmd *cobra.Command, fsys fs.FS) error {
	topics := names(fsys)
	if len(topics) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No help topics available.")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Available topics:")
	for _, name := range topics {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
	}
	return nil
}

func show(cmd *cobra.Command, fsys fs.FS, name string) error {
	content, err := fs.ReadFile(fsys, path.Base(name)+Extension)
	if err != nil {
		return fmt.Errorf("unknown topic %q", name)
	}

	rendered := string(content)
	if isatty.IsTerminal(os.Stdout.Fd()) {
		if r, err := glamour.NewTermRenderer(glamour.WithAutoStyle()); err == nil {
			if out, err := r.Render(rendered); err == nil {
				rendered = out
			}
		}
	}

	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}
