// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package listspacer inserts blank lines before markdown list items that
// directly follow prose, so renderers that require a separating blank line
// (Pandoc, Quarto) recognise the list.
package listspacer

import (
	"fmt"
	"regexp"
	"strings"
)

// listItem matches bullet (-, *, +) and ordered (1.) list markers followed
// by whitespace, after optional indentation.
var listItem = regexp.MustCompile(`^\s*(?:[-*+]|\d+\.)\s`)

// IsListItem reports whether line starts a list item.
func IsListItem(line string) bool {
	return listItem.MatchString(line)
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// Fix returns content with a blank line inserted before every list item that
// is preceded by a non-blank line. Items that follow another list item are
// left alone, as are items whose preceding line is itself separated from
// earlier text by a blank line (a continuation paragraph inside a list).
// Lines are only ever inserted, never edited or removed.
func Fix(content string) string {
	out, _ := fix(content)
	return out
}

// fix does the work for Fix and reports the 0-based indexes (in the input)
// of the lines that received a blank line above them.
func fix(content string) (string, []int) {
	lines := strings.Split(content, "\n")
	fixed := make([]string, 0, len(lines))
	var inserted []int

	for i, line := range lines {
		if IsListItem(line) && i > 0 && !isBlank(lines[i-1]) && !isNested(lines, i) {
			fixed = append(fixed, blankLike(lines[i-1]))
			inserted = append(inserted, i)
		}
		fixed = append(fixed, line)
	}

	if len(inserted) == 0 {
		return content, nil
	}
	return strings.Join(fixed, "\n"), inserted
}

// blankLike returns an empty line with the same line ending as prev, so CRLF
// files stay CRLF.
func blankLike(prev string) string {
	if strings.HasSuffix(prev, "\r") {
		return "\r"
	}
	return ""
}

// isNested reports whether the list item at index i needs no separating
// blank line: either the previous line is a list item, or the previous line
// is text that already has a blank line above it.
func isNested(lines []string, i int) bool {
	prev := i - 1
	if prev < 0 {
		return false
	}
	if IsListItem(lines[prev]) {
		return true
	}
	return !isBlank(lines[prev]) && prev > 0 && isBlank(lines[prev-1])
}

// Transformer adapts Fix to the file processing layer. Each inserted blank
// line is reported as one change.
type Transformer struct{}

// Transform implements rewrite.Transformer.
func (Transformer) Transform(content string) (string, []string) {
	out, inserted := fix(content)
	if len(inserted) == 0 {
		return content, nil
	}
	lines := strings.Split(content, "\n")
	changes := make([]string, len(inserted))
	for n, i := range inserted {
		changes[n] = fmt.Sprintf("blank line before line %d: %s", i+1, strings.TrimSpace(lines[i]))
	}
	return out, changes
}
