// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rewrite discovers text files and rewrites them in place through a
// Transformer. Files are processed one at a time; a failure on one file is
// recorded in its FileResult and does not stop the others.
package rewrite

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"
)

// Sentinel errors for path handling.
var (
	ErrPathNotFound         = errors.New("path does not exist")
	ErrUnsupportedExtension = errors.New("unsupported file extension")
)

// Transformer rewrites a document's content and describes each change.
// Returning no changes means the file is left untouched.
type Transformer interface {
	Transform(content string) (string, []string)
}

// FileResult holds the outcome of processing one file.
type FileResult struct {
	// Path is the file path as discovered.
	Path string

	// Rel is Path relative to the root that was scanned.
	Rel string

	// Changed reports whether the transform produced changes. In a dry run
	// the file is not written even when Changed is true.
	Changed bool

	// Changes describes each edit in the order it was made.
	Changes []string

	// Err is set when the file could not be read or written.
	Err error
}

// Summary counts the outcomes of a run.
type Summary struct {
	Changed   int
	Unchanged int
	Failed    int
}

// TotalChanges returns the number of individual edits across results.
func TotalChanges(results []FileResult) int {
	n := 0
	for _, r := range results {
		n += len(r.Changes)
	}
	return n
}

// Summarize counts changed, unchanged and failed results.
func Summarize(results []FileResult) Summary {
	var s Summary
	for _, r := range results {
		switch {
		case r.Err != nil:
			s.Failed++
		case r.Changed:
			s.Changed++
		default:
			s.Unchanged++
		}
	}
	return s
}

// HasExtension reports whether path ends in one of exts, ignoring case.
func HasExtension(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.ContainsFunc(exts, func(e string) bool {
		return strings.ToLower(e) == ext
	})
}

// walkDir is replaced in tests to inject unreadable entries.
var walkDir = filepath.WalkDir

// Discover returns the files to process under root. A regular file is
// returned on its own if its extension is in exts; a directory is walked
// recursively in lexical order. Entries below root that cannot be read are
// reported to warn and skipped.
func Discover(root string, exts []string, warn io.Writer) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, root)
		}
		return nil, fmt.Errorf("checking %s: %w", root, err)
	}

	if !info.IsDir() {
		if !HasExtension(root, exts) {
			return nil, fmt.Errorf("%w: %s (expected %s)", ErrUnsupportedExtension, root, strings.Join(exts, ", "))
		}
		return []string{root}, nil
	}

	var files []string
	err = walkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return fmt.Errorf("scanning %s: %w", path, err)
			}
			fmt.Fprintf(warn, "warning: skipping %s: %v\n", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if HasExtension(path, exts) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// ProcessFile reads path, applies t, and writes the result back when there
// were changes and dryRun is false. The file keeps its permissions.
func ProcessFile(t Transformer, path string, dryRun bool) FileResult {
	res := FileResult{Path: path, Rel: path}

	info, err := os.Stat(path)
	if err != nil {
		res.Err = fmt.Errorf("reading %s: %w", path, err)
		return res
	}
	data, err := os.ReadFile(path)
	if err != nil {
		res.Err = fmt.Errorf("reading %s: %w", path, err)
		return res
	}

	if !utf8.Valid(data) {
		res.Err = fmt.Errorf("reading %s: invalid UTF-8", path)
		return res
	}

	original := string(data)
	updated, changes := t.Transform(original)
	if len(changes) == 0 || updated == original {
		return res
	}

	if !dryRun {
		if err := os.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
			res.Err = fmt.Errorf("writing %s: %w", path, err)
			return res
		}
	}

	res.Changed = true
	res.Changes = changes
	return res
}

// ProcessAll runs ProcessFile over files in order and sets each result's Rel
// relative to root when root is a directory.
func ProcessAll(t Transformer, root string, files []string, dryRun bool) []FileResult {
	results := make([]FileResult, 0, len(files))
	for _, f := range files {
		res := ProcessFile(t, f, dryRun)
		if rel, err := filepath.Rel(root, f); err == nil && rel != "." {
			res.Rel = rel
		}
		results = append(results, res)
	}
	return results
}
