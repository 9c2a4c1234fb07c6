// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package spelling

import "regexp"

// preservePatterns match regions whose text must never be rewritten: code,
// markup, CSS, URLs and front matter. Matching is case sensitive.
var preservePatterns = compileAll(
	// CSS declarations
	`color\s*:\s*[^;]+;`,
	`background-color\s*:\s*[^;]+;`,
	`border-color\s*:\s*[^;]+;`,
	`text-align\s*:\s*center\s*;`,
	`align-items\s*:\s*center\s*;`,
	`justify-content\s*:\s*center\s*;`,

	// CSS custom properties
	`--[a-zA-Z-]*color[a-zA-Z-]*`,
	`--[a-zA-Z-]*center[a-zA-Z-]*`,

	// HTML attribute values
	`class\s*=\s*["'][^"']*["']`,
	`id\s*=\s*["'][^"']*["']`,
	`style\s*=\s*["'][^"']*["']`,
	`href\s*=\s*["'][^"']*["']`,
	`src\s*=\s*["'][^"']*["']`,

	// URLs
	`https?://[^\s<>"]+`,

	// fenced and inline code
	"```[^`]*```",
	"`[^`]+`",

	// YAML front matter
	`(?ms)^---[ \t]*$.*?^---[ \t]*$`,

	// HTML and XML tags
	`<[^>]+>`,

	// CSS rule bodies, Quarto attribute blocks, inline JSON
	`\{[^}]*\}`,
)

func compileAll(exprs ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		res[i] = regexp.MustCompile(e)
	}
	return res
}

// span is a half-open byte range [start, end).
type span struct {
	start, end int
}

func (s span) overlaps(start, end int) bool {
	return start < s.end && end > s.start
}

// protectedSpans scans text with every preserve pattern and returns the
// matched regions. It holds no state; callers rescan after each edit.
func protectedSpans(text string) []span {
	var spans []span
	for _, re := range preservePatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			spans = append(spans, span{loc[0], loc[1]})
		}
	}
	return spans
}

// isProtected reports whether [start, end) overlaps any span.
func isProtected(spans []span, start, end int) bool {
	for _, s := range spans {
		if s.overlaps(start, end) {
			return true
		}
	}
	return false
}
