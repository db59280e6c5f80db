package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	noteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

var (
	mu          sync.Mutex
	sink        io.Writer = os.Stdout
	verboseMode bool
)

// SetVerbose enables or disables verbose output. The CLI calls this when
// the --verbose flag is set.
func SetVerbose(v bool) {
	mu.Lock()
	verboseMode = v
	mu.Unlock()
}

// SetOutput redirects all output to w and returns the previous sink.
// Tests use this to capture output.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	prev := sink
	sink = w
	mu.Unlock()
	return prev
}

// Success prints a completed-operation message in green.
func Success(msg string) {
	emit(successStyle.Render("✔ " + msg))
}

// Error prints a failure message in red.
func Error(msg string) {
	emit(errorStyle.Render("✖ " + msg))
}

// Info prints a status message in cyan.
func Info(msg string) {
	emit(infoStyle.Render(msg))
}

// Step prints an indented sub-item in gray.
func Step(msg string) {
	emit(noteStyle.Render("   " + msg))
}

// Verbose prints a gray note only when verbose mode is enabled. Writers
// use this for per-artifact notes that would be noise in normal runs.
func Verbose(msg string) {
	mu.Lock()
	defer mu.Unlock()
	if verboseMode {
		fmt.Fprintln(sink, noteStyle.Render(msg))
	}
}

func emit(line string) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(sink, line)
}
