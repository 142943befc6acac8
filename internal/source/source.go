// Package source loads raw example documents from the filesystem. All disk
// I/O happens here, before anything enters the catalog's mutation lock.
package source

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// RawDoc is one source unit: where it came from and its raw bytes, not yet
// parsed or validated.
type RawDoc struct {
	Ref  string
	Data []byte
}

// ReadFile loads a single markdown file.
func ReadFile(path string) (RawDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RawDoc{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return RawDoc{Ref: path, Data: data}, nil
}

// ScanDir walks dir for markdown files, skipping dot-directories and
// dot-files. Results come back sorted by path so ingestion order is
// deterministic.
func ScanDir(dir string) ([]RawDoc, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != dir && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") || !IsMarkdown(name) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	sort.Strings(paths)

	docs := make([]RawDoc, 0, len(paths))
	for _, p := range paths {
		doc, err := ReadFile(p)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// IsMarkdown reports whether name looks like a markdown document.
func IsMarkdown(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
