package helpsys

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"
)

const globChars = "*?["

func shellReadDir(path string) ([]os.FileInfo, error) {
	if path == "" {
		path = "."
	}

	return ioutil.ReadDir(path)
}

// quoteGlob turns pattern into a single shell word in which only the glob characters stay unquoted.
// Spaces, quotes, $ and friends are matched literally. Bracket expressions are kept as they are.
func quoteGlob(pattern string) string {
	var result strings.Builder
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			result.WriteString("'" + strings.ReplaceAll(literal.String(), "'", `'\''`) + "'")
			literal.Reset()
		}
	}

	inBracket := false
	for _, char := range pattern {
		switch {
		case inBracket:
			result.WriteRune(char)
			inBracket = char != ']'
		case strings.ContainsRune(globChars, char):
			flush()
			result.WriteRune(char)
			inBracket = char == '['
		default:
			literal.WriteRune(char)
		}
	}
	flush()

	return result.String()
}

// ExpandPatterns resolves glob patterns (including "**") in the passed file arguments.
// Arguments naming an existing file and arguments without glob characters are returned unchanged so that missing
// files are reported by the scanner. Patterns which don't match anything produce a PatternUnmatched diagnostic.
func ExpandPatterns(ctx context.Context, patterns []string) ([]string, []Diagnostic) {
	result := make([]string, 0, len(patterns))
	diags := make([]Diagnostic, 0)
	cfg := expand.Config{
		ReadDir:  shellReadDir,
		GlobStar: true,
	}
	parser := syntax.NewParser()

	for _, item := range patterns {
		if !strings.ContainsAny(item, globChars) {
			result = append(result, item)
			continue
		}

		if _, err := os.Stat(item); err == nil {
			result = append(result, item)
			continue
		}

		words := make([]*syntax.Word, 0)
		err := parser.Words(strings.NewReader(quoteGlob(filepath.ToSlash(item))), func(w *syntax.Word) bool {
			words = append(words, w)
			return true
		})

		var matches []string
		if err == nil {
			matches, err = expand.Fields(&cfg, words...)
		}
		if err != nil {
			diags = append(diags, Diagnostic{
				Kind: ReadFailed,
				Path: item,
				Err:  eris.Wrapf(err, "failed to resolve pattern %s", item),
			})
			continue
		}

		found := 0
		for _, match := range matches {
			// unmatched patterns are returned as-is
			match = filepath.FromSlash(match)
			if _, err := os.Lstat(match); err != nil {
				continue
			}

			result = append(result, match)
			found++
		}

		log(ctx).Debug().Str("pattern", item).Int("matches", found).Msgf("Expanded %s", item)
		if found == 0 {
			diags = append(diags, Diagnostic{Kind: PatternUnmatched, Path: item})
		}
	}

	return result, diags
}
