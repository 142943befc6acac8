package model

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxDescriptionChars = 300
	minTagCount         = 1
	maxTagCount         = 10
)

var knownFields = map[string]bool{
	"name":        true,
	"description": true,
	"category":    true,
	"author":      true,
	"authorUrl":   true,
	"tags":        true,
	"lastUpdated": true,
}

// Violation is a single metadata constraint failure.
type Violation struct {
	Field  string
	Reason string
}

func (v Violation) String() string {
	return v.Field + ": " + v.Reason
}

// ValidationError carries every violation found in one pass, so callers can
// report all problems at once.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	reasons := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		reasons[i] = v.String()
	}
	return "invalid metadata: " + strings.Join(reasons, "; ")
}

// Has reports whether any violation names the given field.
func (e *ValidationError) Has(field string) bool {
	for _, v := range e.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

// ValidateOptions tunes time-dependent checks.
type ValidateOptions struct {
	// Now anchors the future-date check; zero means time.Now().
	Now time.Time
	// FutureSlack is how far past today lastUpdated may point.
	FutureSlack time.Duration
}

// FromRaw deserializes a parsed frontmatter block into typed Metadata and
// checks every schema constraint. Validation is total: the returned error,
// if any, is a *ValidationError listing all violations, and a document with
// any violation is rejected wholesale.
func FromRaw(raw Raw, opts ValidateOptions) (Metadata, error) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	var m Metadata
	var violations []Violation
	add := func(field, reason string) {
		violations = append(violations, Violation{Field: field, Reason: reason})
	}

	requiredString := func(field string) string {
		val, present := raw[field]
		if !present || val == nil {
			add(field, "is required")
			return ""
		}
		s, ok := val.(string)
		if !ok {
			add(field, "must be a string")
			return ""
		}
		if strings.TrimSpace(s) == "" {
			add(field, "must not be empty")
			return ""
		}
		return s
	}

	m.Name = requiredString("name")
	m.Description = requiredString("description")
	if utf8.RuneCountInString(m.Description) > maxDescriptionChars {
		add("description", fmt.Sprintf("must be at most %d characters", maxDescriptionChars))
	}
	m.Category = requiredString("category")
	m.Author = requiredString("author")

	if val, present := raw["authorUrl"]; present && val != nil {
		s, ok := val.(string)
		switch {
		case !ok:
			add("authorUrl", "must be a string")
		case !isAbsoluteURL(s):
			add("authorUrl", "must be an absolute URL")
		default:
			m.AuthorURL = s
		}
	}

	if val, present := raw["tags"]; !present || val == nil {
		add("tags", "is required")
	} else {
		m.Tags = coerceTags(val, add)
	}

	if val, present := raw["lastUpdated"]; !present || val == nil {
		add("lastUpdated", "is required")
	} else {
		m.LastUpdated = coerceDate(val, add)
	}
	if m.LastUpdated.Valid() {
		today := now.UTC().Truncate(24 * time.Hour)
		if m.LastUpdated.Time().After(today.Add(opts.FutureSlack)) {
			add("lastUpdated", "must not be in the future")
		}
	}

	for key, val := range raw {
		if !knownFields[key] {
			if m.Extra == nil {
				m.Extra = make(map[string]any)
			}
			m.Extra[key] = val
		}
	}

	if len(violations) > 0 {
		return m, &ValidationError{Violations: violations}
	}
	return m, nil
}

func coerceTags(val any, add func(field, reason string)) []string {
	list, ok := val.([]any)
	if !ok {
		add("tags", "must be a sequence of strings")
		return nil
	}
	tags := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			add("tags", "must be a sequence of strings")
			return nil
		}
		tags = append(tags, s)
	}

	if len(tags) < minTagCount || len(tags) > maxTagCount {
		add("tags", fmt.Sprintf("must have between %d and %d entries", minTagCount, maxTagCount))
	}
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			add("tags", "entries must not be empty")
			continue
		}
		// Same key form the index buckets use, so two tags that would land
		// in one bucket are always a duplicate here.
		key := strings.ToLower(strings.TrimSpace(tag))
		if seen[key] {
			add("tags", fmt.Sprintf("duplicate entry %q", tag))
		}
		seen[key] = true
	}
	return tags
}

func coerceDate(val any, add func(field, reason string)) Date {
	switch v := val.(type) {
	case string:
		d, err := ParseDate(v)
		if err != nil {
			add("lastUpdated", "must be a date in YYYY-MM-DD format")
		}
		return d
	case time.Time:
		// YAML resolves unquoted dates to time.Time.
		d, _ := ParseDate(v.UTC().Format(dateLayout))
		return d
	default:
		add("lastUpdated", "must be a date in YYYY-MM-DD format")
		return Date{}
	}
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs() && u.Host != ""
}
