package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordingWriter_UnverifiedAppendsEveryCall(t *testing.T) {
	tempDir := t.TempDir()
	report := filepath.Join(tempDir, "report.json")

	w := NewRecordingWriter(report, false)
	for i := 0; i < 5; i++ {
		path := filepath.Join(tempDir, fmt.Sprintf("artifact-%d.go", i))
		require.NoError(t, w.WriteIfChanged(path, []byte("package gen")))
	}
	require.NoError(t, w.Finalize())

	loaded, err := LoadReport(report)
	require.NoError(t, err)
	assert.Len(t, loaded.Changed, 5)
	assert.Empty(t, loaded.Removed)
}

func TestRecordingWriter_AppendOnlyLogKeepsDuplicateCalls(t *testing.T) {
	tempDir := t.TempDir()
	report := filepath.Join(tempDir, "report.json")
	path := filepath.Join(tempDir, "a.go")

	// The change-set is a log of calls, not a map keyed by path
	w := NewRecordingWriter(report, false)
	require.NoError(t, w.WriteIfChanged(path, []byte("first")))
	require.NoError(t, w.WriteIfChanged(path, []byte("second")))
	require.NoError(t, w.Finalize())

	loaded, err := LoadReport(report)
	require.NoError(t, err)
	require.Len(t, loaded.Changed, 2)
	assert.Equal(t, "first", loaded.Changed[0].Data)
	assert.Equal(t, "second", loaded.Changed[1].Data)
}

func TestRecordingWriter_VerifiedSuppressesNoOpUpdates(t *testing.T) {
	tempDir := t.TempDir()
	report := filepath.Join(tempDir, "report.json")

	identical := filepath.Join(tempDir, "identical.go")
	require.NoError(t, os.WriteFile(identical, []byte("package gen"), 0644))
	stale := filepath.Join(tempDir, "stale.go")
	require.NoError(t, os.WriteFile(stale, []byte("package old"), 0644))
	missing := filepath.Join(tempDir, "missing.go")

	w := NewRecordingWriter(report, true)
	require.NoError(t, w.WriteIfChanged(identical, []byte("package gen")))
	require.NoError(t, w.WriteIfChanged(stale, []byte("package gen")))
	require.NoError(t, w.WriteIfChanged(missing, []byte("package gen")))
	require.NoError(t, w.Finalize())

	loaded, err := LoadReport(report)
	require.NoError(t, err)
	require.Len(t, loaded.Changed, 2)
	assert.Equal(t, stale, loaded.Changed[0].Path)
	assert.Equal(t, missing, loaded.Changed[1].Path)
}

func TestRecordingWriter_RemoveOnlyRecordsExistingPaths(t *testing.T) {
	tempDir := t.TempDir()
	report := filepath.Join(tempDir, "report.json")

	existing := filepath.Join(tempDir, "existing.go")
	require.NoError(t, os.WriteFile(existing, []byte("x"), 0644))
	missing := filepath.Join(tempDir, "missing.go")

	w := NewRecordingWriter(report, false)
	require.NoError(t, w.Remove(existing))
	require.NoError(t, w.Remove(missing))
	require.NoError(t, w.Finalize())

	loaded, err := LoadReport(report)
	require.NoError(t, err)
	require.Len(t, loaded.Removed, 1)
	assert.Equal(t, existing, loaded.Removed[0].Path)
}

func TestRecordingWriter_NeverTouchesRealFiles(t *testing.T) {
	tempDir := t.TempDir()
	report := filepath.Join(tempDir, "report.json")

	target := filepath.Join(tempDir, "a.go")
	existing := filepath.Join(tempDir, "existing.go")
	require.NoError(t, os.WriteFile(existing, []byte("original"), 0644))

	w := NewRecordingWriter(report, true)
	require.NoError(t, w.WriteIfChanged(target, []byte("package gen")))
	require.NoError(t, w.WriteIfChanged(existing, []byte("replacement")))
	require.NoError(t, w.Remove(existing))
	require.NoError(t, w.Finalize())

	_, err := os.Stat(target)
	assert.True(t, os.IsNotExist(err), "recorded artifact must not be created on disk")

	content, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "original", string(content), "existing files must not be modified or removed")
}

func TestRecordingWriter_FinalizeEmptySession(t *testing.T) {
	tempDir := t.TempDir()
	report := filepath.Join(tempDir, "report.json")

	w := NewRecordingWriter(report, false)
	require.NoError(t, w.Finalize())

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.JSONEq(t, `{"removed":[],"changed":[]}`, string(data))
}

func TestRecordingWriter_FinalizeErrorCarriesReportPath(t *testing.T) {
	tempDir := t.TempDir()
	report := filepath.Join(tempDir, "no-such-dir", "report.json")

	w := NewRecordingWriter(report, false)
	err := w.Finalize()
	require.Error(t, err)

	var finalizeErr *FinalizeError
	require.ErrorAs(t, err, &finalizeErr)
	assert.Equal(t, report, finalizeErr.Path)
	assert.Error(t, finalizeErr.Unwrap())
}

func TestRecordingWriter_VerifyReadFailureSurfacesWriteError(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission-based failure injection does not work as root")
	}

	tempDir := t.TempDir()
	report := filepath.Join(tempDir, "report.json")

	unreadable := filepath.Join(tempDir, "unreadable.go")
	require.NoError(t, os.WriteFile(unreadable, []byte("x"), 0000))
	t.Cleanup(func() { os.Chmod(unreadable, 0644) })

	w := NewRecordingWriter(report, true)
	err := w.WriteIfChanged(unreadable, []byte("y"))
	require.Error(t, err)

	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, unreadable, writeErr.Path)
}

func TestRecordingWriter_NonUTF8ContentPanics(t *testing.T) {
	tempDir := t.TempDir()
	w := NewRecordingWriter(filepath.Join(tempDir, "report.json"), false)

	assert.Panics(t, func() {
		w.WriteIfChanged(filepath.Join(tempDir, "binary.bin"), []byte{0xff, 0xfe, 0xfd})
	})
}

func TestRecordingWriter_ConcurrentProducers(t *testing.T) {
	tempDir := t.TempDir()
	report := filepath.Join(tempDir, "report.json")

	removable := filepath.Join(tempDir, "removable.go")
	require.NoError(t, os.WriteFile(removable, []byte("x"), 0644))

	const workers = 8
	const writesPerWorker = 25

	w := NewRecordingWriter(report, false)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < writesPerWorker; j++ {
				path := filepath.Join(tempDir, fmt.Sprintf("w%d-a%d.go", worker, j))
				if err := w.WriteIfChanged(path, []byte("package gen")); err != nil {
					t.Errorf("WriteIfChanged failed: %v", err)
				}
			}
			if err := w.Remove(removable); err != nil {
				t.Errorf("Remove failed: %v", err)
			}
		}(i)
	}
	wg.Wait()
	require.NoError(t, w.Finalize())

	// No ordering guarantee across workers; counts are the contract
	loaded, err := LoadReport(report)
	require.NoError(t, err)
	assert.Len(t, loaded.Changed, workers*writesPerWorker)
	assert.Len(t, loaded.Removed, workers)
}
