package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/quill/artifact"
	"github.com/simonhull/firebird-suite/quill/internal/config"
	"github.com/simonhull/firebird-suite/quill/output"
)

var recordPath string

var applyCmd = &cobra.Command{
	Use:   "apply <report.json>",
	Short: "Replay a change report against the filesystem",
	Long: `Replays a recorded change-set: writes every changed artifact (skipping
files that already match) and removes every removed artifact.

With --record, nothing is written; applying is re-recorded into a new
report after verifying against the filesystem, previewing what a real
apply would still change. A quill.yml with writer.mode: record does the
same by default.

Example:
  quill apply codegen.json
  quill apply codegen.json --record pending.json`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVar(&recordPath, "record", "", "Re-record into a new report instead of writing files")
	RootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	report, err := artifact.LoadReport(args[0])
	if err != nil {
		return err
	}

	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	opts := cfg.Options()
	if recordPath != "" {
		opts = artifact.Options{
			Mode:                    artifact.ModeRecord,
			ReportPath:              recordPath,
			VerifyAgainstFilesystem: true,
		}
	}

	w, err := artifact.NewWriter(opts)
	if err != nil {
		return err
	}

	for _, rec := range report.Changed {
		if err := w.WriteIfChanged(rec.Path, []byte(rec.Data)); err != nil {
			return err
		}
	}
	for _, rec := range report.Removed {
		if err := w.Remove(rec.Path); err != nil {
			return err
		}
	}
	if err := w.Finalize(); err != nil {
		return err
	}

	if opts.Mode == artifact.ModeRecord {
		output.Success(fmt.Sprintf("Recorded pending changes to %s", opts.ReportPath))
	} else {
		output.Success(fmt.Sprintf("Applied %d updates and %d removals", len(report.Changed), len(report.Removed)))
	}
	return nil
}
