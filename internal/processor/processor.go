// Package processor drives the minification run: it discovers eligible
// stylesheets under a root directory and, for each one, writes a
// .min.css file and a .css.map positional map next to it. Existing
// outputs at those paths are overwritten.
package processor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npm-packages-collection/minify-css-map/internal/minifier"
	"github.com/npm-packages-collection/minify-css-map/internal/sourcemap"
	"github.com/npm-packages-collection/minify-css-map/internal/ui"
)

// Processor holds the settings for one run over a directory tree.
type Processor struct {
	Root    string
	Exclude []string
	Quiet   bool
}

// New creates a Processor for the given root directory.
func New(root string) *Processor {
	return &Processor{Root: root}
}

// Failure records a file that could not be processed.
type Failure struct {
	Path string
	Err  error
}

// Summary reports the outcome of a run.
type Summary struct {
	Processed int
	Failed    []Failure
}

// Run enumerates eligible stylesheets and processes each one in turn.
// Per-file failures do not stop the run; they are collected into the
// summary. A missing or invalid root fails before any file is touched.
func (p *Processor) Run() (*Summary, error) {
	sources, err := FindSources(p.Root, p.Exclude)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	for _, src := range sources {
		if err := p.ProcessFile(src); err != nil {
			summary.Failed = append(summary.Failed, Failure{Path: src, Err: err})
			continue
		}
		summary.Processed++
	}

	return summary, nil
}

// ProcessFile minifies the stylesheet at path, writing <base>.min.css and
// <base>.css.map alongside it. This is the single-file entry point; it
// performs no eligibility filtering.
func (p *Processor) ProcessFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	minified := minifier.Minify(string(content))

	minPath := strings.TrimSuffix(path, sourceSuffix) + minifiedSuffix
	if err := os.WriteFile(minPath, []byte(minified), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", minPath, err)
	}

	if !p.Quiet {
		ui.PrintInfo("Minified %s → %s", path, minPath)
	}

	sm := sourcemap.Build(string(content), filepath.Base(path))
	data, err := sm.JSON()
	if err != nil {
		return err
	}

	mapPath := path + mapSuffix
	if err := os.WriteFile(mapPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", mapPath, err)
	}

	return nil
}
