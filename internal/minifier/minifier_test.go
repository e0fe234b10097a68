package minifier

import (
	"strings"
	"testing"
)

func TestMinify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"basic rule",
			"body {\n  font-size: 16px;\n  background-color: #fff;\n}",
			"body{font-size:16px;background-color:#fff}",
		},
		{
			"comment removed",
			"/* comment */\n\nbody { color: red; }",
			"body{color:red}",
		},
		{
			"custom property",
			":root {\n  --main-bg-color: #fff;\n}",
			":root{--main-bg-color:#fff}",
		},
		{
			"empty input",
			"",
			"",
		},
		{
			"multiline comment",
			"a {\n  /* line one\n     line two */\n  color: blue;\n}",
			"a{color:blue}",
		},
		{
			"unterminated comment runs to end",
			"a { color: red; }\n/* never closed\nb { color: blue; }",
			"a{color:red}",
		},
		{
			"multiple comments",
			"/* one */ a { x: 1; } /* two */ b { y: 2; }",
			"a{x:1}b{y:2}",
		},
		{
			"media query",
			"@media (max-width: 600px) {\n  a { color: blue; }\n}",
			"@media (max-width:600px){a{color:blue}}",
		},
		{
			"repeated semicolons before brace",
			"a { color: red;; }",
			"a{color:red}",
		},
		{
			"tabs and crlf",
			"a\t{\r\n\tcolor:\tred;\r\n}",
			"a{color:red}",
		},
		{
			"already minified",
			"a{color:red}",
			"a{color:red}",
		},
		{
			"selector list keeps comma spacing collapsed",
			"h1 ,  h2 { margin: 0; }",
			"h1 , h2{margin:0}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Minify(tt.input)
			if got != tt.expected {
				t.Errorf("Minify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMinifyIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"body {\n  font-size: 16px;\n  background-color: #fff;\n}",
		"/* comment */\n\nbody { color: red; }",
		":root {\n  --main-bg-color: #fff;\n}",
		"@media (max-width: 600px) {\n  a { color: blue; }\n}",
		"a { color: red;; }",
		"h1 ,  h2 { margin: 0; }",
	}

	for _, input := range inputs {
		once := Minify(input)
		twice := Minify(once)
		if once != twice {
			t.Errorf("Minify not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestMinifyProperties(t *testing.T) {
	inputs := []string{
		"body {\n  font-size: 16px;\n}",
		"/* c */ a { x : 1 ; y : 2 ; }",
		"a\t{\tcolor:\tred\t;\t}\n\nb { z: 3; }",
		"div > p { margin : 0 ; }",
	}

	for _, input := range inputs {
		got := Minify(input)

		if strings.Contains(got, "  ") {
			t.Errorf("Minify(%q) contains consecutive spaces: %q", input, got)
		}
		if strings.ContainsAny(got, "\n\t") {
			t.Errorf("Minify(%q) contains newline or tab: %q", input, got)
		}
		if strings.Contains(got, ";}") {
			t.Errorf("Minify(%q) contains %q: %q", input, ";}", got)
		}
		for _, punct := range []string{"{", "}", ":", ";"} {
			if strings.Contains(got, " "+punct) || strings.Contains(got, punct+" ") {
				t.Errorf("Minify(%q) has space adjacent to %q: %q", input, punct, got)
			}
		}
	}
}

func TestMinifyStripsCommentContent(t *testing.T) {
	input := "/* SECRET-MARKER */\nbody { color: red; }"
	got := Minify(input)
	if strings.Contains(got, "SECRET-MARKER") {
		t.Errorf("comment content survived minification: %q", got)
	}
}
