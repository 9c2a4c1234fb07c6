//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Docs groups targets that run the tools over the markdown under docs/.
type Docs mg.Namespace

// Lists inserts missing blank lines before lists in the markdown under docs/.
func (Docs) Lists() error {
	return sh.RunV("go", "run", "./cmd/fix-md-lists", "docs")
}

// Spelling reports American spellings in the markdown under docs/ without
// changing anything.
func (Docs) Spelling() error {
	return sh.RunV("go", "run", "./cmd/spelling-converter", "--dry-run", "--mode", "safe", "docs")
}
