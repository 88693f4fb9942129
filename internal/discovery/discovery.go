// Package discovery locates the Python source files covered by a scan
// target.
package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// skippedDirs are conventional build, VCS, and virtual-environment
// directories that never contain user source worth analyzing.
var skippedDirs = map[string]struct{}{
	"__pycache__": {},
	".git":        {},
	"venv":        {},
	"env":         {},
	".venv":       {},
}

// SourceFiles returns the Python files covered by target. A file target is
// returned as given; a directory target is walked recursively with the
// conventional exclusions applied.
func SourceFiles(target string) ([]string, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("stat target: %w", err)
	}

	if !info.IsDir() {
		return []string{target}, nil
	}

	var files []string
	err = filepath.WalkDir(target, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			if _, skip := skippedDirs[entry.Name()]; skip && path != target {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(entry.Name(), ".py") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk target: %w", err)
	}
	return files, nil
}

// DisplayPath converts an absolute or target-joined path into the form shown
// in the report: relative to the scan root when the root is a directory, the
// path as given otherwise.
func DisplayPath(target string, targetIsDir bool, path string) string {
	if !targetIsDir {
		return path
	}
	rel, err := filepath.Rel(target, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
