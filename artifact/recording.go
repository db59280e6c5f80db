package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/simonhull/firebird-suite/quill/filesystem"
)

// DeletionRecord marks one artifact that existed and should be removed.
type DeletionRecord struct {
	Path string `json:"path"`
}

// UpdateRecord marks one artifact that was created or whose content
// changed. Data is the literal UTF-8 text of the artifact.
type UpdateRecord struct {
	Path string `json:"path"`
	Data string `json:"data"`
}

// Report is the change-set a RecordingWriter accumulates and the wire
// format of the report file it produces.
type Report struct {
	Removed []DeletionRecord `json:"removed"`
	Changed []UpdateRecord   `json:"changed"`
}

// LoadReport reads a report file produced by RecordingWriter.Finalize.
func LoadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report %s: %w", path, err)
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing report %s: %w", path, err)
	}
	return &r, nil
}

// RecordingWriter accumulates a change-set in memory instead of touching
// real files, and serializes it to a JSON report on Finalize.
//
// The change-set is an append-only log of calls. The mutex is held only
// around appends, never across filesystem I/O, so concurrent producers
// contend only for the nanoseconds a slice append takes.
type RecordingWriter struct {
	reportPath string
	verify     bool

	mu      sync.Mutex
	records Report
}

// NewRecordingWriter creates a writer that records changes to reportPath.
// When verifyAgainstFilesystem is true, WriteIfChanged consults the real
// file first and suppresses records for artifacts that already match.
func NewRecordingWriter(reportPath string, verifyAgainstFilesystem bool) *RecordingWriter {
	return &RecordingWriter{
		reportPath: reportPath,
		verify:     verifyAgainstFilesystem,
		records: Report{
			// Pre-allocated so an empty session marshals to [] rather
			// than null
			Removed: []DeletionRecord{},
			Changed: []UpdateRecord{},
		},
	}
}

// WriteIfChanged appends an update record. The real file at path is never
// modified; with verification enabled it is read for comparison only.
//
// Content must be valid UTF-8 text. The report format carries artifact
// data as JSON strings, so non-UTF-8 content cannot be represented; it is
// a precondition violation and panics.
func (w *RecordingWriter) WriteIfChanged(path string, content []byte) error {
	if w.verify {
		same, err := filesystem.SameContent(path, content)
		if err != nil {
			return &WriteError{Path: path, Err: err}
		}
		if same {
			return nil
		}
	}

	if !utf8.Valid(content) {
		panic(fmt.Sprintf("artifact: non-UTF-8 content recorded for %s; the report format carries text only", path))
	}

	w.mu.Lock()
	w.records.Changed = append(w.records.Changed, UpdateRecord{Path: path, Data: string(content)})
	w.mu.Unlock()
	return nil
}

// Remove appends a deletion record only when path currently exists on the
// real filesystem. A report listing deletions of paths that were never
// there would mislead a reviewer.
func (w *RecordingWriter) Remove(path string) error {
	if !filesystem.Exists(path) {
		return nil
	}

	w.mu.Lock()
	w.records.Removed = append(w.records.Removed, DeletionRecord{Path: path})
	w.mu.Unlock()
	return nil
}

// Finalize serializes the accumulated change-set as a single JSON
// document to the report path, creating or truncating that file.
func (w *RecordingWriter) Finalize() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	data, err := json.Marshal(w.records)
	if err != nil {
		return &FinalizeError{Path: w.reportPath, Err: err}
	}
	if err := os.WriteFile(w.reportPath, data, 0644); err != nil {
		return &FinalizeError{Path: w.reportPath, Err: err}
	}
	return nil
}
