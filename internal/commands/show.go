package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/simonhull/firebird-suite/quill/artifact"
	"github.com/simonhull/firebird-suite/quill/reportview"
)

var (
	showData bool
	usePager bool
)

var showCmd = &cobra.Command{
	Use:   "show <report.json>",
	Short: "Render a change report for review",
	Long: `Renders a change report produced by a recording session.

Example:
  quill show codegen.json
  quill show codegen.json --data
  quill show codegen.json --pager`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showData, "data", false, "Include full artifact contents")
	showCmd.Flags().BoolVar(&usePager, "pager", false, "View in a full-screen pager")
	RootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	report, err := artifact.LoadReport(args[0])
	if err != nil {
		return err
	}

	view := reportview.Render(report, reportview.Options{ShowData: showData})

	// Long output goes to the pager automatically, but only on a real
	// terminal so piped output stays plain
	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	if usePager || (interactive && strings.Count(view, "\n") > 40) {
		return reportview.Pager(args[0], view)
	}

	fmt.Print(view)
	return nil
}
