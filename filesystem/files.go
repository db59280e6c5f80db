package filesystem

import (
	"bytes"
	"os"
	"path/filepath"
)

// Exists reports whether path exists on disk.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// SameContent reports whether the file at path already holds exactly
// content. A missing file is never the same.
func SameContent(path string, content []byte) (bool, error) {
	if !Exists(path) {
		return false, nil
	}
	existing, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	return bytes.Equal(existing, content), nil
}

// EnsureParentDir creates the directory chain above path if it's missing.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if Exists(dir) {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}

// WriteIfChanged writes content to path unless the file already holds it
// byte for byte. Parent directories are created when the file is new.
// The returned flag reports whether a physical write happened.
func WriteIfChanged(path string, content []byte) (bool, error) {
	if Exists(path) {
		existing, err := os.ReadFile(path)
		if err != nil {
			return false, err
		}
		if bytes.Equal(existing, content) {
			return false, nil
		}
	} else if err := EnsureParentDir(path); err != nil {
		return false, err
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return false, err
	}
	return true, nil
}
