package artifact

import (
	"fmt"
	"os"

	"github.com/simonhull/firebird-suite/quill/filesystem"
	"github.com/simonhull/firebird-suite/quill/output"
)

// FileWriter commits artifacts directly to the filesystem. It holds no
// shared state; every call operates on its own path, so concurrent calls
// need no locking.
type FileWriter struct{}

// NewFileWriter creates a writer that commits artifacts to disk.
func NewFileWriter() *FileWriter {
	return &FileWriter{}
}

// WriteIfChanged writes content to path, creating parent directories for
// new files and skipping the write entirely when the target already holds
// identical content.
func (w *FileWriter) WriteIfChanged(path string, content []byte) error {
	wrote, err := filesystem.WriteIfChanged(path, content)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if !wrote {
		output.Verbose(fmt.Sprintf("unchanged, skipping %s", path))
	}
	return nil
}

// Remove deletes path, best effort. Every failure is absorbed as success:
// deletion is inherently racy from the caller's perspective, and a
// leftover artifact after a failed delete is not a correctness violation
// for this writer. Absorbed failures are noted at verbose level.
func (w *FileWriter) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			output.Verbose(fmt.Sprintf("tried to remove already deleted artifact %s", path))
		} else {
			output.Verbose(fmt.Sprintf("could not remove artifact %s: %v", path, err))
		}
	}
	return nil
}

// Finalize is a no-op; FileWriter buffers nothing.
func (w *FileWriter) Finalize() error {
	return nil
}
