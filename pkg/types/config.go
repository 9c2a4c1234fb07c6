// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// Mode selects which built-in mapping tables the spelling converter applies.
type Mode string

const (
	// ModeSafe applies the explicit word mappings plus custom mappings.
	ModeSafe Mode = "safe"

	// ModeRegex applies the root pattern mappings plus custom mappings.
	ModeRegex Mode = "regex"

	// ModeHybrid applies explicit mappings, then pattern mappings, then custom mappings.
	ModeHybrid Mode = "hybrid"
)

// Modes lists the accepted modes in the order they are documented.
var Modes = []Mode{ModeSafe, ModeRegex, ModeHybrid}

// ParseMode validates s and returns the matching Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid mode %q: use safe, regex, or hybrid", s)
}

// UsesExceptions reports whether the exception word list is consulted in this mode.
func (m Mode) UsesExceptions() bool {
	return m == ModeRegex || m == ModeHybrid
}

// ListsConfig holds settings for the markdown list spacing fixer.
type ListsConfig struct {
	// Extensions are the file extensions processed when scanning a directory
	// (default .md, .qmd).
	Extensions []string `json:"extensions" yaml:"extensions"`

	// DryRun reports files that would change without writing them.
	DryRun bool `json:"dry_run" yaml:"dry_run"`
}

// SpellingConfig holds settings for the spelling converter.
type SpellingConfig struct {
	// Mode selects the mapping tables: safe, regex, or hybrid (default hybrid).
	Mode Mode `json:"mode" yaml:"mode"`

	// WordList is an optional path to a custom mapping file
	// (.csv, .json, .txt, .list, .yaml, .yml, .db, .sqlite).
	WordList string `json:"wordlist,omitempty" yaml:"wordlist,omitempty"`

	// Extensions are the file extensions processed when scanning a directory
	// (default .md, .qmd, .html, .txt, .css).
	Extensions []string `json:"extensions" yaml:"extensions"`

	// DryRun reports changes without writing files or the report.
	DryRun bool `json:"dry_run" yaml:"dry_run"`
}

// DefaultListExtensions are the extensions the list fixer accepts.
var DefaultListExtensions = []string{".md", ".qmd"}

// DefaultSpellingExtensions are the extensions the spelling converter scans.
var DefaultSpellingExtensions = []string{".md", ".qmd", ".html", ".txt", ".css"}
