// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/textfix/internal/rewrite"
	"github.com/pdiddy/textfix/internal/spelling"
	"github.com/pdiddy/textfix/pkg/types"
)

// convertSpelling runs the converter over path. Status and the report go to
// w; word list and scan warnings go to warn. Only a missing path is an error.
func convertSpelling(w, warn io.Writer, path string, cfg types.SpellingConfig) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", rewrite.ErrPathNotFound, path)
		}
		return err
	}

	conv, err := buildConverter(w, warn, cfg)
	if err != nil {
		return err
	}

	if cfg.DryRun {
		fmt.Fprintf(w, "DRY RUN - Analyzing American spelling in: %s\n", path)
	} else {
		fmt.Fprintf(w, "Converting American spelling to Australian-British spelling in: %s\n", path)
	}
	fmt.Fprintf(w, "Mode: %s\n", conv.Mode())
	fmt.Fprintln(w, rule)

	if info.IsDir() {
		return convertDirectory(w, warn, conv, path, cfg)
	}
	convertFile(w, conv, path, cfg.DryRun)
	return nil
}

// buildConverter loads the custom word list, if any, and builds the
// converter. Word list problems are warnings: the run goes on without it.
func buildConverter(w, warn io.Writer, cfg types.SpellingConfig) (*spelling.Converter, error) {
	var pairs []spelling.WordPair
	if cfg.WordList != "" {
		fmt.Fprintf(w, "Loading custom word list: %s\n", cfg.WordList)
		loaded, err := spelling.LoadWordList(cfg.WordList, warn)
		if err != nil {
			fmt.Fprintf(warn, "warning: %v\n", err)
		}
		pairs = loaded
	}

	conv, err := spelling.NewConverter(cfg.Mode, pairs)
	if err != nil {
		return nil, err
	}
	if cfg.WordList != "" {
		fmt.Fprintf(w, "Loaded %d custom word mappings\n", conv.CustomCount())
	}
	return conv, nil
}

// convertFile handles a single file of any extension and lists every change.
func convertFile(w io.Writer, conv *spelling.Converter, path string, dryRun bool) {
	res := rewrite.ProcessFile(conv, path, dryRun)
	if res.Err != nil {
		fmt.Fprintf(w, "Error processing %s: %v\n", path, res.Err)
		return
	}
	if !res.Changed {
		fmt.Fprintln(w, "No spelling changes needed.")
		return
	}

	name := filepath.Base(path)
	if dryRun {
		fmt.Fprintf(w, "Would update: %s (%d changes)\n", name, len(res.Changes))
		fmt.Fprintln(w, "\nChanges that would be made:")
	} else {
		fmt.Fprintf(w, "✓ Updated: %s (%d changes)\n", name, len(res.Changes))
		fmt.Fprintln(w, "\nChanges made:")
	}
	for _, c := range res.Changes {
		fmt.Fprintf(w, "  • %s\n", c)
	}
}

// convertDirectory processes every eligible file under dir, prints the
// report, and saves it into dir after a real run that changed something.
func convertDirectory(w, warn io.Writer, conv *spelling.Converter, dir string, cfg types.SpellingConfig) error {
	found, err := rewrite.Discover(dir, cfg.Extensions, warn)
	if err != nil {
		return err
	}

	// A report left by an earlier run is output, not input.
	files := found[:0]
	for _, f := range found {
		if filepath.Base(f) != spelling.ReportFile {
			files = append(files, f)
		}
	}

	results := rewrite.ProcessAll(conv, dir, files, cfg.DryRun)
	for _, r := range results {
		switch {
		case r.Err != nil:
			fmt.Fprintf(w, "Error processing %s: %v\n", r.Path, r.Err)
		case !r.Changed:
		case cfg.DryRun:
			fmt.Fprintf(w, "Would update: %s (%d changes)\n", r.Rel, len(r.Changes))
		default:
			fmt.Fprintf(w, "✓ Updated: %s (%d changes)\n", r.Rel, len(r.Changes))
		}
	}

	fmt.Fprintln(w, "\n"+rule)
	title := spelling.ReportTitle
	if cfg.DryRun {
		title = spelling.DryRunReportTitle
	}
	fmt.Fprintln(w, spelling.GenerateReport(results, title))

	if rewrite.Summarize(results).Changed == 0 {
		return nil
	}
	if cfg.DryRun {
		fmt.Fprintln(w, "\nDry run complete. No files were modified.")
		return nil
	}

	reportPath, err := spelling.WriteReport(dir, spelling.GenerateReport(results, spelling.ReportTitle))
	if err != nil {
		fmt.Fprintf(w, "Error saving report: %v\n", err)
		return nil
	}
	fmt.Fprintf(w, "Detailed report saved to: %s\n", reportPath)
	return nil
}
