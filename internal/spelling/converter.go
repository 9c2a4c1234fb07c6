// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package spelling converts American spellings to British/Australian ones
// while leaving code, markup, CSS and URLs untouched.
//
// A Converter is built once from a mode and an optional custom word list and
// then applied to any number of documents. Mappings run in table order; each
// one sees the text as rewritten by the mappings before it.
package spelling

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/textfix/pkg/types"
)

// ErrInvalidMode is returned by NewConverter for an unknown mode.
var ErrInvalidMode = errors.New("invalid conversion mode")

// WordPair is one custom american→british mapping.
type WordPair struct {
	American string `json:"american" yaml:"american"`
	British  string `json:"british" yaml:"british"`
}

// Converter rewrites American spellings. It is immutable after construction
// and safe to reuse across documents.
type Converter struct {
	mode        types.Mode
	mappings    []mapping
	customCount int
	upper       cases.Caser
	title       cases.Caser
}

// NewConverter builds the mapping table for mode. Custom pairs are merged
// last; a pair whose word already has a built-in mapping replaces it.
func NewConverter(mode types.Mode, custom []WordPair) (*Converter, error) {
	t := newTable()
	switch mode {
	case types.ModeSafe:
		t.add(safeMappings()...)
	case types.ModeRegex:
		t.add(patternMappings()...)
	case types.ModeHybrid:
		t.add(safeMappings()...)
		t.add(patternMappings()...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}

	custom = normalizePairs(custom)
	for _, p := range custom {
		t.add(literal(regexp.QuoteMeta(p.American), p.British))
	}

	return &Converter{
		mode:        mode,
		mappings:    t.entries,
		customCount: len(custom),
		upper:       cases.Upper(language.Und),
		title:       cases.Title(language.Und),
	}, nil
}

// normalizePairs trims both sides of each pair and drops incomplete ones.
func normalizePairs(pairs []WordPair) []WordPair {
	out := make([]WordPair, 0, len(pairs))
	for _, p := range pairs {
		p.American = strings.TrimSpace(p.American)
		p.British = strings.TrimSpace(p.British)
		if p.American == "" || p.British == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Mode returns the mode the converter was built with.
func (c *Converter) Mode() types.Mode { return c.mode }

// MappingCount returns the number of entries in the merged table.
func (c *Converter) MappingCount() int { return len(c.mappings) }

// CustomCount returns the number of custom pairs that were merged.
func (c *Converter) CustomCount() int { return c.customCount }

// Convert rewrites text and returns it with one "original → replacement"
// record per edit, in the order the edits were made.
func (c *Converter) Convert(text string) (string, []string) {
	var changes []string
	result := text

	for _, m := range c.mappings {
		matches := m.findAll(result)
		if len(matches) == 0 {
			continue
		}

		spans := protectedSpans(result)
		for i := len(matches) - 1; i >= 0; i-- {
			loc := matches[i]
			start, end := loc[0], loc[1]

			if isProtected(spans, start, end) {
				continue
			}

			original := result[start:end]
			if c.mode.UsesExceptions() && IsException(original) {
				continue
			}

			replacement := c.replacement(m, result, loc)
			if replacement == original {
				continue
			}

			result = result[:start] + replacement + result[end:]
			changes = append(changes, original+" → "+replacement)
			spans = protectedSpans(result)
		}
	}

	return result, changes
}

// Transform implements rewrite.Transformer.
func (c *Converter) Transform(content string) (string, []string) {
	return c.Convert(content)
}

// replacement computes the text that replaces the match at loc in src.
func (c *Converter) replacement(m mapping, src string, loc []int) string {
	original := src[loc[0]:loc[1]]

	switch m.kind {
	case replaceRoot:
		return m.rewrite(original)
	case replaceTemplate:
		out := string(m.pattern.ExpandString(nil, m.repl, src, loc))
		if isUpper(original) {
			return c.upper.String(out)
		}
		return out
	default:
		return c.matchCase(original, m.repl)
	}
}

// matchCase returns repl in the casing style of original: all upper, title
// case, or repl unchanged.
func (c *Converter) matchCase(original, repl string) string {
	switch {
	case isUpper(original):
		return c.upper.String(repl)
	case isTitle(original):
		return c.title.String(repl)
	default:
		return repl
	}
}

// isUpper reports whether s has at least one letter and no lower-case letters.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// isTitle reports whether s starts with an upper-case letter and has no
// other upper-case letters.
func isTitle(s string) bool {
	for i, r := range s {
		if i == 0 {
			if !unicode.IsUpper(r) {
				return false
			}
			continue
		}
		if unicode.IsUpper(r) {
			return false
		}
	}
	return s != ""
}
