package reportview

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/simonhull/firebird-suite/quill/artifact"
)

// Options configures report rendering.
type Options struct {
	// ShowData includes full artifact contents under each update.
	ShowData bool

	// Width caps line length. 0 means detect the terminal width.
	Width int
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	changedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("red"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Render returns a human-readable view of a change report. Array order
// follows the report, which is the order calls reached the writer.
func Render(r *artifact.Report, opts Options) string {
	width := opts.Width
	if width == 0 {
		width = terminalWidth()
	}

	var b strings.Builder

	summary := fmt.Sprintf("%d changed, %d removed", len(r.Changed), len(r.Removed))
	b.WriteString(titleStyle.Render(summary) + "\n")

	if len(r.Changed) == 0 && len(r.Removed) == 0 {
		b.WriteString(mutedStyle.Render("Nothing to apply.") + "\n")
		return b.String()
	}

	for _, rec := range r.Removed {
		b.WriteString(removedStyle.Render(truncate("- "+rec.Path, width)) + "\n")
	}

	for _, rec := range r.Changed {
		line := fmt.Sprintf("+ %s (%d bytes)", rec.Path, len(rec.Data))
		b.WriteString(changedStyle.Render(truncate(line, width)) + "\n")

		if opts.ShowData {
			for _, l := range strings.Split(strings.TrimRight(rec.Data, "\n"), "\n") {
				b.WriteString(mutedStyle.Render(truncate("    "+l, width)) + "\n")
			}
		}
	}

	return b.String()
}

// truncate shortens a line to maxWidth runes with a "..." indicator.
func truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = 80
	}
	if utf8.RuneCountInString(s) <= maxWidth {
		return s
	}

	runes := []rune(s)
	if maxWidth < 3 {
		return "..."[:maxWidth]
	}
	return string(runes[:maxWidth-3]) + "..."
}

// terminalWidth returns the terminal width, defaulting to 80
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
