package artifact

import "fmt"

// Writer is the contract between a generator and artifact persistence.
//
// WriteIfChanged requests that path end up containing content. It is
// idempotent with respect to the filesystem target: repeating a call with
// identical arguments causes no further physical effect.
//
// Remove requests that path no longer exist. It succeeds without effect
// when the writer determines the path is already absent.
//
// Finalize flushes any buffered state. It must be called exactly once,
// after all WriteIfChanged/Remove calls for the session have completed.
type Writer interface {
	WriteIfChanged(path string, content []byte) error
	Remove(path string) error
	Finalize() error
}

// Mode selects which Writer strategy NewWriter builds.
type Mode string

const (
	// ModeWrite commits artifacts directly to the filesystem.
	ModeWrite Mode = "write"

	// ModeRecord accumulates a change-set and writes a JSON report.
	ModeRecord Mode = "record"
)

// Options configure writer construction. ReportPath and
// VerifyAgainstFilesystem only apply to ModeRecord.
type Options struct {
	Mode                    Mode
	ReportPath              string
	VerifyAgainstFilesystem bool
}

// NewWriter selects the concrete strategy from opts. An empty mode means
// ModeWrite.
func NewWriter(opts Options) (Writer, error) {
	switch opts.Mode {
	case ModeWrite, "":
		return NewFileWriter(), nil
	case ModeRecord:
		if opts.ReportPath == "" {
			return nil, fmt.Errorf("record mode requires a report path")
		}
		return NewRecordingWriter(opts.ReportPath, opts.VerifyAgainstFilesystem), nil
	default:
		return nil, fmt.Errorf("unknown writer mode %q", opts.Mode)
	}
}

// WriteError reports an I/O failure while persisting or comparing a
// single artifact.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing artifact %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// FinalizeError reports a failure while producing the change report.
type FinalizeError struct {
	Path string
	Err  error
}

func (e *FinalizeError) Error() string {
	return fmt.Sprintf("writing report %s: %v", e.Path, e.Err)
}

func (e *FinalizeError) Unwrap() error { return e.Err }
