// Package minifier compacts stylesheet text with byte-level regex
// substitutions. It is purely lexical: no CSS grammar is parsed, and
// comment syntax inside quoted string values is stripped like any other
// comment.
package minifier

import (
	"regexp"
	"strings"
)

var (
	blockComment = regexp.MustCompile(`/\*[\s\S]*?\*/`)
	openComment  = regexp.MustCompile(`/\*[\s\S]*$`)
	whitespace   = regexp.MustCompile(`\s+`)

	// Applied in order after comment and whitespace removal.
	patterns = []struct {
		re   *regexp.Regexp
		repl string
	}{
		{regexp.MustCompile(`\s*([{};:])\s*`), "$1"},
		{regexp.MustCompile(`;+}`), "}"},
	}
)

// Minify returns a compacted copy of source. It strips block comments
// (unterminated ones run to end of input), collapses whitespace runs to a
// single space, removes whitespace around {, }, : and ;, and drops
// semicolons that directly precede a closing brace. The transformation is
// deterministic and idempotent.
func Minify(source string) string {
	result := blockComment.ReplaceAllString(source, "")
	result = openComment.ReplaceAllString(result, "")
	result = whitespace.ReplaceAllString(result, " ")

	for _, p := range patterns {
		result = p.re.ReplaceAllString(result, p.repl)
	}

	return strings.TrimSpace(result)
}
