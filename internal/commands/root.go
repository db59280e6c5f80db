package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/quill"
	"github.com/simonhull/firebird-suite/quill/output"
)

var (
	verbose bool
)

// RootCmd is the root command for Quill
var RootCmd = &cobra.Command{
	Use:   "quill",
	Short: "Quill - Artifact persistence for Firebird Suite generators",
	Long: `Quill commits generated artifacts to disk (skipping no-op writes) or
records them as a reviewable JSON change report, and inspects or replays
those reports.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		output.SetVerbose(verbose)
	},
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show per-artifact notes")

	RootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Quill v%s\n", quill.Version)
		},
	})
}
