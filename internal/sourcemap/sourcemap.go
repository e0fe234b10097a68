// Package sourcemap builds the per-line positional map emitted next to a
// minified stylesheet. The format is a custom, human-readable line
// correspondence table, not an encoded standards source map: every entry
// points at column 0 of its original line.
package sourcemap

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Version is the schema version written into every map.
const Version = 3

// LineEntry pairs one original line with its 1-based "line:column"
// position. The column is always 0; column shifts introduced by
// minification are not tracked.
type LineEntry struct {
	Original  string `json:"original"`
	Generated string `json:"generated"`
}

// Map is the positional map for a single stylesheet.
type Map struct {
	Version  int         `json:"version"`
	File     string      `json:"file"`
	Sources  []string    `json:"sources"`
	Mappings []LineEntry `json:"mappings"`
}

// Build constructs the positional map for original, attributed to the
// logical file name. Lines are produced by a literal split on '\n', so a
// trailing newline contributes a final empty entry and empty input yields
// a single empty entry.
func Build(original, logicalName string) *Map {
	lines := strings.Split(original, "\n")

	mappings := make([]LineEntry, len(lines))
	for i, line := range lines {
		mappings[i] = LineEntry{
			Original:  line,
			Generated: fmt.Sprintf("%d:0", i+1),
		}
	}

	return &Map{
		Version:  Version,
		File:     logicalName,
		Sources:  []string{logicalName},
		Mappings: mappings,
	}
}

// JSON serializes the map as pretty-printed JSON with 2-space indentation.
func (m *Map) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode source map: %w", err)
	}
	return data, nil
}
