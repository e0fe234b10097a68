package processor

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	sourceSuffix   = ".css"
	minifiedSuffix = ".min.css"
	mapSuffix      = ".map"
)

// FindSources walks root and returns every stylesheet eligible for
// minification: regular files ending in .css but not .min.css, minus any
// path matching an exclude pattern. Results are in lexical order.
// Symbolic links are not followed.
func FindSources(root string, excludes []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("target directory does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("target is not a directory: %s", root)
	}

	var sources []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		name := d.Name()
		if !strings.HasSuffix(name, sourceSuffix) || strings.HasSuffix(name, minifiedSuffix) {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if isExcluded(relPath, excludes) {
			return nil
		}

		sources = append(sources, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	return sources, nil
}

// isExcluded checks if a path matches any of the exclude patterns
func isExcluded(relPath string, excludes []string) bool {
	relPath = filepath.ToSlash(relPath)
	for _, pattern := range excludes {
		if matched, _ := filepath.Match(pattern, relPath); matched {
			return true
		}
		if matched, _ := filepath.Match(pattern, filepath.Base(relPath)); matched {
			return true
		}
	}
	return false
}
