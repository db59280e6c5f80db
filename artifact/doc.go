// Package artifact persists generated output for the Firebird Suite's
// code generators.
//
// # Writers
//
// Generators hand every produced file to a Writer and never touch the
// filesystem themselves. Two interchangeable strategies implement the
// interface:
//
//   - FileWriter commits artifacts directly to disk, skipping writes whose
//     target already holds identical content. Skipped writes keep mtimes
//     stable and avoid invalidating downstream build caches.
//   - RecordingWriter accumulates an in-memory change-set instead of
//     touching real files, and serializes it as a single JSON report on
//     Finalize. With filesystem verification enabled it suppresses records
//     for artifacts that already match on disk, which turns a recording
//     run into a preview of what generation would actually change.
//
// The strategy is chosen at construction time:
//
//	w, err := artifact.NewWriter(artifact.Options{
//	    Mode:                    artifact.ModeRecord,
//	    ReportPath:              "codegen.json",
//	    VerifyAgainstFilesystem: true,
//	})
//
// # Sessions
//
// A writer serves one generation session: any number of concurrent
// WriteIfChanged and Remove calls, then exactly one Finalize after all of
// them have completed. The change-set is an append-only log of calls, not
// a reconciled final-state map; a path written and later removed appears
// in both sequences. Record order across concurrent callers is whichever
// order they reach the writer in.
//
// # Errors
//
// Failures surface immediately as *WriteError or *FinalizeError carrying
// the offending path; nothing is retried. The caller owns retry and abort
// policy. The one deliberate exception is FileWriter.Remove, which absorbs
// every failure as success (see its documentation).
package artifact
