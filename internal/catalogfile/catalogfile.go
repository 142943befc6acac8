package catalogfile

import (
	"os"
	"path/filepath"
	"strings"
)

const FileName = ".almanac-catalog"

// Find walks up from startDir looking for a .almanac-catalog file pinning
// the working tree to a catalog directory. Returns the catalog dir and the
// directory containing the file. Returns ("", "", nil) if not found.
func Find(startDir string) (catalogDir, dir string, err error) {
	dir = startDir
	for {
		c, err := Read(dir)
		if err != nil {
			return "", "", err
		}
		if c != "" {
			if !filepath.IsAbs(c) {
				c = filepath.Join(dir, c)
			}
			return c, dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", nil
		}
		dir = parent
	}
}

// Write writes catalogDir to dir/.almanac-catalog.
func Write(dir, catalogDir string) error {
	return os.WriteFile(filepath.Join(dir, FileName), []byte(catalogDir+"\n"), 0644)
}

// Read reads and trims the .almanac-catalog file in dir.
// Returns ("", nil) if the file does not exist.
func Read(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Remove deletes dir/.almanac-catalog if present.
func Remove(dir string) error {
	err := os.Remove(filepath.Join(dir, FileName))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
