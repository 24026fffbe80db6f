// Package style renders user-facing deploy output for the terminal.
package style

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func init() {
	// Honors NO_COLOR and CLICOLOR.
	if termenv.EnvNoColor() {
		successStyle = lipgloss.NewStyle().Bold(true)
		noticeStyle = lipgloss.NewStyle()
		mutedStyle = lipgloss.NewStyle()
	}
}

// Bold returns s in bold when stdout is a terminal.
func Bold(s string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// Notice formats an attention line, e.g. the stale-record warning.
func Notice(s string) string {
	return noticeStyle.Render(s)
}

// Muted formats secondary detail.
func Muted(s string) string {
	return mutedStyle.Render(s)
}

// DeploySummary formats the post-deploy success line.
func DeploySummary(url string, fileCount int, width int) string {
	line := fmt.Sprintf("Deployed %d files to %s", fileCount, url)
	if width > 0 && len(line) > width {
		return successStyle.Render(fmt.Sprintf("Deployed %d files", fileCount)) + "\n" + url
	}
	return successStyle.Render(line)
}

// ProjectURL derives the public URL for a deployed project.
func ProjectURL(workspace, slug string) string {
	return fmt.Sprintf("https://%s.lantern.dev/%s", workspace, slug)
}
