// Package output provides styled terminal output for quill.
//
// # Usage
//
//	import "github.com/simonhull/firebird-suite/quill/output"
//
//	output.Success("Applied 12 updates")
//	output.Info("Report: codegen.json")
//	output.Error("Failed to write report")
//
// # Verbose Mode
//
// Low-level notes (skipped no-op writes, absorbed deletion failures) are
// verbose-gated:
//
//	output.SetVerbose(true)
//	output.Verbose("unchanged, skipping internal/models/user.go")
//
// # Styling
//
// Styling follows the Firebird Suite conventions via lipgloss. Because
// quill's writers may be driven by many goroutines at once, all output
// functions are safe for concurrent use, and the sink can be redirected
// with SetOutput for testing.
package output
