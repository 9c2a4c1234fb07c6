// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package spelling

import (
	"bufio"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"
)

// Sentinel errors for word list loading.
var (
	ErrWordListNotFound  = errors.New("word list file not found")
	ErrUnsupportedFormat = errors.New("unsupported word list format")
	ErrInvalidWordList   = errors.New("invalid word list")
)

// SupportedWordListFormats lists the extensions LoadWordList understands.
var SupportedWordListFormats = []string{".csv", ".json", ".txt", ".list", ".yaml", ".yml", ".db", ".sqlite"}

// csvHeaders are first-cell values that mark a CSV header row.
var csvHeaders = map[string]bool{
	"from":     true,
	"american": true,
	"original": true,
	"old":      true,
}

// LoadWordList reads custom american→british pairs from path. The format is
// chosen by extension. Pairs are returned in file order. Malformed lines in
// text lists are reported to warn and skipped.
func LoadWordList(path string, warn io.Writer) ([]WordPair, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrWordListNotFound, path)
		}
		return nil, fmt.Errorf("reading word list %s: %w", path, err)
	}

	var (
		pairs []WordPair
		err   error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		pairs, err = loadCSV(path)
	case ".json":
		pairs, err = loadJSON(path)
	case ".txt", ".list":
		pairs, err = loadText(path, warn)
	case ".yaml", ".yml":
		pairs, err = loadYAML(path)
	case ".db", ".sqlite":
		pairs, err = loadSQLite(path)
	default:
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedFormat, ext,
			strings.Join(SupportedWordListFormats, ", "))
	}
	if err != nil {
		return nil, fmt.Errorf("loading word list %s: %w", path, err)
	}
	return pairs, nil
}

// loadCSV reads "american,british" rows with an optional header row.
func loadCSV(path string) ([]WordPair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var pairs []WordPair
	first := true
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing csv: %w", err)
		}
		if first {
			first = false
			if len(row) > 0 && csvHeaders[strings.ToLower(strings.TrimSpace(row[0]))] {
				continue
			}
		}
		if p, ok := makePair(row); ok {
			pairs = append(pairs, p)
		}
	}
	return pairs, nil
}

func makePair(row []string) (WordPair, bool) {
	if len(row) < 2 {
		return WordPair{}, false
	}
	p := WordPair{American: strings.TrimSpace(row[0]), British: strings.TrimSpace(row[1])}
	return p, p.American != "" && p.British != ""
}

// loadJSON reads a flat object of string pairs. Keys keep their file order,
// so the object is walked token by token instead of decoded into a map.
func loadJSON(path string) ([]WordPair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parsing json: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w: JSON file must contain an object of word mappings", ErrInvalidWordList)
	}

	var pairs []WordPair
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing json: %w", err)
		}
		key, _ := keyTok.(string)

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("parsing json value for %q: %w", key, err)
		}
		british, ok := value.(string)
		if !ok {
			continue
		}
		if p, ok := makePair([]string{key, british}); ok {
			pairs = append(pairs, p)
		}
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("parsing json: %w", err)
	}
	return pairs, nil
}

// loadText reads "american=british" lines. Blank lines and lines starting
// with # are ignored.
func loadText(path string, warn io.Writer) ([]WordPair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pairs []WordPair
	sc := bufio.NewScanner(f)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		american, british, found := strings.Cut(line, "=")
		if !found {
			fmt.Fprintf(warn, "warning: invalid format on line %d: %s (expected american=british)\n", lineNum, line)
			continue
		}
		if p, ok := makePair([]string{american, british}); ok {
			pairs = append(pairs, p)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading text list: %w", err)
	}
	return pairs, nil
}

// loadYAML reads a flat mapping of american: british. The document is
// decoded as a node tree to keep key order.
func loadYAML(path string) ([]WordPair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: YAML file must contain a mapping of words", ErrInvalidWordList)
	}

	var pairs []WordPair
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			continue
		}
		if p, ok := makePair([]string{k.Value, v.Value}); ok {
			pairs = append(pairs, p)
		}
	}
	return pairs, nil
}

// readOnlyDSN returns a read-only SQLite URI for path. The path is made
// absolute and percent-encoded, so names containing ? or # stay intact.
func readOnlyDSN(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p, RawQuery: "mode=ro"}
	return u.String(), nil
}

// loadSQLite reads pairs from the mappings table of a SQLite database, in
// insertion order.
func loadSQLite(path string) ([]WordPair, error) {
	dsn, err := readOnlyDSN(path)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT american, british FROM mappings ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying mappings: %w", err)
	}
	defer rows.Close()

	var pairs []WordPair
	for rows.Next() {
		var american, british sql.NullString
		if err := rows.Scan(&american, &british); err != nil {
			return nil, fmt.Errorf("scanning mapping: %w", err)
		}
		if p, ok := makePair([]string{american.String, british.String}); ok {
			pairs = append(pairs, p)
		}
	}
	return pairs, rows.Err()
}
