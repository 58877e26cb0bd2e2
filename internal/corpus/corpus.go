// Package corpus reads labeled training documents laid out as
// <root>/<category>/<file>.
package corpus

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/julienpequegnot/tfclass/internal/extract"
)

var ErrEmptyCorpus = errors.New("no documents found")

type Document struct {
	Category string
	Path     string
	Text     string
}

var supportedExt = map[string]bool{
	".txt":   true,
	".text":  true,
	".md":    true,
	".html":  true,
	".htm":   true,
	".xhtml": true,
}

// Supported reports whether a file is read as a document.
func Supported(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return supportedExt[strings.ToLower(filepath.Ext(base))]
}

// Load reads every supported file below root. Each direct subdirectory is a
// category; files nested deeper belong to that same category. Categories and
// files are returned in lexical order.
func Load(root string) ([]Document, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}

	var docs []Document
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		category := entry.Name()

		paths, err := listFiles(filepath.Join(root, category))
		if err != nil {
			return nil, err
		}
		for _, path := range paths {
			text, err := ReadDocument(path)
			if err != nil {
				return nil, err
			}
			docs = append(docs, Document{Category: category, Path: path, Text: text})
		}
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrEmptyCorpus, root)
	}
	return docs, nil
}

// ReadDocument returns the text of a single file, extracting HTML content
// when the extension says so.
func ReadDocument(path string) (string, error) {
	if extract.IsHTML(path) {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()

		text, err := extract.HTML(f)
		if err != nil {
			return "", fmt.Errorf("failed to extract %s: %w", path, err)
		}
		return text, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// Categories returns the distinct categories of docs in first-seen order.
func Categories(docs []Document) []string {
	seen := make(map[string]bool)
	var out []string
	for _, d := range docs {
		if !seen[d.Category] {
			seen[d.Category] = true
			out = append(out, d.Category)
		}
	}
	return out
}

func listFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if Supported(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}
