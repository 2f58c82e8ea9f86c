package gen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes every generated file to its Filename, creating parent
// directories as needed, and drops any unformatted sidecar left by an
// earlier failure.
func WriteFiles(files []*GeneratedFile) error {
	for _, file := range files {
		if err := os.MkdirAll(filepath.Dir(file.Filename), dirPerm); err != nil {
			return fmt.Errorf("creating directory for %s: %w", file.Filename, err)
		}

		if err := os.WriteFile(file.Filename, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		err := os.Remove(DebugName(file.Filename))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("removing stale sidecar of %s: %w", file.Filename, err)
		}
	}

	return nil
}

// RemoveStale deletes the outputs at paths together with their sidecars and
// returns the outputs that actually existed.
func RemoveStale(paths []string) ([]string, error) {
	var removed []string

	for _, path := range paths {
		err := os.Remove(path)

		switch {
		case err == nil:
			removed = append(removed, path)
		case !errors.Is(err, fs.ErrNotExist):
			return removed, fmt.Errorf("removing stale output %s: %w", path, err)
		}

		err = os.Remove(DebugName(path))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return removed, fmt.Errorf("removing stale sidecar of %s: %w", path, err)
		}
	}

	return removed, nil
}

// DebugName returns the sidecar path holding unformatted output for outName.
func DebugName(outName string) string {
	return strings.TrimSuffix(outName, ".go") + ".unformatted.go"
}
