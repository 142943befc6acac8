package slug

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
)

// Make normalizes s into a catalog id: lowercased, with every run of
// non-letter/non-digit characters collapsed to a single hyphen. Letters
// outside ASCII are kept as-is since catalog sources often carry
// non-English names.
func Make(s string) (string, error) {
	var b strings.Builder
	hyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if hyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			hyphen = false
			b.WriteRune(r)
			continue
		}
		hyphen = true
	}
	out := b.String()
	if out == "" {
		return "", fmt.Errorf("cannot derive slug from %q", s)
	}
	return out, nil
}

// FromRef derives an id from a source reference, using the base file name
// without its extension.
func FromRef(ref string) (string, error) {
	base := filepath.Base(ref)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	id, err := Make(base)
	if err != nil {
		return "", fmt.Errorf("deriving id from %q: %w", ref, err)
	}
	return id, nil
}

// Validate reports whether id is already in canonical slug form.
func Validate(id string) error {
	canon, err := Make(id)
	if err != nil {
		return err
	}
	if canon != id {
		return fmt.Errorf("invalid id %q: expected slug form %q", id, canon)
	}
	return nil
}
