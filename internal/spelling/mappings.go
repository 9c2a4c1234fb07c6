// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package spelling

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// replaceKind says how a mapping turns a match into its replacement.
type replaceKind int

const (
	// replaceLiteral substitutes a fixed word, matching the case of the match.
	replaceLiteral replaceKind = iota
	// replaceTemplate expands a ${n} template against the match's groups.
	replaceTemplate
	// replaceRoot rewrites the matched root in place with a function.
	replaceRoot
)

// mapping is one (pattern, replacement) entry in a converter's table.
type mapping struct {
	key     string // pattern source, used to merge colliding entries
	pattern *regexp.Regexp
	kind    replaceKind
	repl    string
	rewrite func(match string) string

	// A leading or trailing \b in key is stripped from pattern and checked
	// by findAll instead, since RE2's \b only knows ASCII word characters.
	wordStart, wordEnd bool
}

func newMapping(key string, kind replaceKind, repl string, rewrite func(string) string) mapping {
	expr := key
	wordStart := strings.HasPrefix(expr, `\b`)
	expr = strings.TrimPrefix(expr, `\b`)
	wordEnd := endsWithWordBoundary(expr)
	if wordEnd {
		expr = strings.TrimSuffix(expr, `\b`)
	}
	return mapping{
		key:       key,
		pattern:   regexp.MustCompile(`(?i)` + expr),
		kind:      kind,
		repl:      repl,
		rewrite:   rewrite,
		wordStart: wordStart,
		wordEnd:   wordEnd,
	}
}

// endsWithWordBoundary reports whether expr ends in a \b assertion rather
// than an escaped backslash followed by b.
func endsWithWordBoundary(expr string) bool {
	if !strings.HasSuffix(expr, "b") {
		return false
	}
	slashes := 0
	for i := len(expr) - 2; i >= 0 && expr[i] == '\\'; i-- {
		slashes++
	}
	return slashes%2 == 1
}

// findAll returns the submatch index of every non-overlapping match of m in
// text, leftmost first. A match must sit on a word boundary wherever the key
// asks for one; a match that doesn't is dropped and the scan resumes one rune
// after its start.
func (m mapping) findAll(text string) [][]int {
	var out [][]int
	for pos := 0; pos < len(text); {
		loc := m.pattern.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		for i := range loc {
			if loc[i] >= 0 {
				loc[i] += pos
			}
		}
		start, end := loc[0], loc[1]
		if end > start && (!m.wordStart || isWordBoundary(text, start)) && (!m.wordEnd || isWordBoundary(text, end)) {
			out = append(out, loc)
			pos = end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		pos = start + max(size, 1)
	}
	return out
}

// isWordBoundary reports whether byte offset i of text lies between a word
// character and a non-word character, or between one and the edge of text.
func isWordBoundary(text string, i int) bool {
	before, after := false, false
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:i])
		before = isWordRune(r)
	}
	if i < len(text) {
		r, _ := utf8.DecodeRuneInString(text[i:])
		after = isWordRune(r)
	}
	return before != after
}

// isWordRune reports whether r is a letter, digit or underscore in any script.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func literal(word, british string) mapping {
	return newMapping(`\b`+word+`\b`, replaceLiteral, british, nil)
}

func pattern(expr, template string) mapping {
	return newMapping(expr, replaceTemplate, template, nil)
}

// table is an ordered mapping list. Adding an entry whose key is already
// present replaces that entry in place, so the position of the first
// insertion and the replacement of the last one win.
type table struct {
	entries []mapping
	index   map[string]int
}

func newTable() *table {
	return &table{index: make(map[string]int)}
}

func (t *table) add(ms ...mapping) {
	for _, m := range ms {
		if i, ok := t.index[m.key]; ok {
			t.entries[i] = m
			continue
		}
		t.index[m.key] = len(t.entries)
		t.entries = append(t.entries, m)
	}
}

// rootRewrite returns a function that swaps the leading root `from` of a
// match for `to`, keeping the case of each original letter. from and to must
// have the same length.
func rootRewrite(from, to string) func(string) string {
	return func(match string) string {
		if len(match) < len(from) || !strings.EqualFold(match[:len(from)], from) {
			return match
		}
		b := []byte(match)
		for i := 0; i < len(from); i++ {
			if from[i] == to[i] {
				continue
			}
			if unicode.IsUpper(rune(b[i])) {
				b[i] = byte(unicode.ToUpper(rune(to[i])))
			} else {
				b[i] = to[i]
			}
		}
		return string(b)
	}
}

// safeMappings are explicit, high-confidence word conversions.
func safeMappings() []mapping {
	return []mapping{
		// -ize to -ise
		literal("organize", "organise"),
		literal("organized", "organised"),
		literal("organizing", "organising"),
		literal("organization", "organisation"),
		literal("organizations", "organisations"),
		literal("reorganize", "reorganise"),
		literal("reorganized", "reorganised"),
		literal("reorganizing", "reorganising"),
		literal("analyze", "analyse"),
		literal("analyzed", "analysed"),
		literal("analyzing", "analysing"),
		newMapping(`\brealiz(e|ed|ing|ation)\b`, replaceRoot, "", rootRewrite("realiz", "realis")),
		literal("materialize", "materialise"),
		literal("materialized", "materialised"),
		literal("materializing", "materialising"),
		literal("personalize", "personalise"),
		literal("personalized", "personalised"),
		literal("personalizing", "personalising"),
		literal("finalize", "finalise"),
		literal("finalized", "finalised"),
		literal("finalizing", "finalising"),
		literal("utilize", "utilise"),
		literal("utilized", "utilised"),
		literal("utilizing", "utilising"),
		literal("utilization", "utilisation"),
		literal("categorize", "categorise"),
		literal("categorized", "categorised"),
		literal("categorizing", "categorising"),
		literal("centralize", "centralise"),
		literal("centralized", "centralised"),
		literal("centralizing", "centralising"),
		literal("minimize", "minimise"),
		literal("minimized", "minimised"),
		literal("minimizing", "minimising"),

		// -or to -our
		literal("color", "colour"),
		literal("colors", "colours"),
		literal("colored", "coloured"),
		literal("coloring", "colouring"),
		literal("behavior", "behaviour"),
		literal("behaviors", "behaviours"),
		literal("behavioral", "behavioural"),
		literal("favor", "favour"),
		literal("favors", "favours"),
		literal("favored", "favoured"),
		literal("favoring", "favouring"),
		literal("honor", "honour"),
		literal("honors", "honours"),
		literal("honored", "honoured"),
		literal("honoring", "honouring"),
		literal("humor", "humour"),
		literal("humors", "humours"),
		literal("labor", "labour"),
		literal("labors", "labours"),
		literal("labored", "laboured"),
		literal("laboring", "labouring"),
		literal("harbor", "harbour"),
		literal("harbors", "harbours"),
		literal("neighbor", "neighbour"),
		literal("neighbors", "neighbours"),

		// -er to -re
		literal("center", "centre"),
		literal("centers", "centres"),
		literal("centered", "centred"),
		literal("centering", "centring"),
	}
}

const (
	izeRoots = `(organ|anal|real|material|personal|final|util|categor|central|minim)`
	orRoots  = `(col|behavi|fav|hon|hum|lab|harb|neighb)`
)

// patternMappings convert whole families of words sharing a root.
func patternMappings() []mapping {
	return []mapping{
		// -ize/-ise, common roots only
		pattern(`\b`+izeRoots+`ize\b`, `${1}ise`),
		pattern(`\b`+izeRoots+`ized\b`, `${1}ised`),
		pattern(`\b`+izeRoots+`izing\b`, `${1}ising`),
		pattern(`\b`+izeRoots+`ization\b`, `${1}isation`),
		pattern(`\b(organ)izational\b`, `${1}isational`),

		// -or/-our, specific words only
		pattern(`\b`+orRoots+`or\b`, `${1}our`),
		pattern(`\b`+orRoots+`ors\b`, `${1}ours`),
		pattern(`\b`+orRoots+`ored\b`, `${1}oured`),
		pattern(`\b`+orRoots+`oring\b`, `${1}ouring`),

		// -er/-re, specific words only
		pattern(`\b(cen)ter\b`, `${1}tre`),
		pattern(`\b(cen)ters\b`, `${1}tres`),
		pattern(`\b(cen)tered\b`, `${1}tred`),
		pattern(`\b(cen)tering\b`, `${1}tring`),
	}
}

// exceptions are words that are never converted in regex or hybrid mode.
var exceptions = map[string]bool{
	"seize": true, "seized": true, "seizing": true, "seizure": true,
	"prize": true, "prized": true, "prizing": true,
	"size": true, "sized": true, "sizing": true,
	"capsize": true, "capsized": true, "capsizing": true,
	"maize": true,
	"froze": true,

	// -or words that keep -or
	"actor": true, "actors": true, "doctor": true, "doctors": true,
	"editor": true, "editors": true, "factor": true, "factors": true,
	"sector": true, "sectors": true, "motor": true, "motors": true,
	"major": true, "majors": true, "minor": true, "minors": true,
	"prior": true, "priors": true, "senior": true, "seniors": true,
	"junior": true, "juniors": true, "professor": true, "professors": true,
	"visitor": true, "visitors": true, "error": true, "errors": true,
	"terror": true, "terrors": true, "horror": true, "horrors": true,

	// -er words that keep -er
	"after": true, "water": true, "paper": true, "under": true, "over": true,
	"never": true, "other": true, "another": true, "weather": true,
	"whether": true, "letter": true, "better": true,
	"computer": true, "computers": true, "chapter": true, "chapters": true,
	"number": true, "numbers": true, "member": true, "members": true,
}

// IsException reports whether word is on the exception list.
func IsException(word string) bool {
	return exceptions[strings.ToLower(word)]
}

// Exceptions returns the exception words in no particular order.
func Exceptions() []string {
	words := make([]string, 0, len(exceptions))
	for w := range exceptions {
		words = append(words, w)
	}
	return words
}
