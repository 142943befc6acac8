package model

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

// Date is a calendar date in YYYY-MM-DD form. It survives YAML round-trips
// without losing the raw source text, so a malformed value can be reported
// by the validator instead of failing the whole decode.
type Date struct {
	raw   string
	t     time.Time
	valid bool
}

// ParseDate parses s as a strict YYYY-MM-DD calendar date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{raw: s}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date{raw: s, t: t, valid: true}, nil
}

// MustDate is a test helper; it panics on malformed input.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) Time() time.Time { return d.t }
func (d Date) Valid() bool     { return d.valid }
func (d Date) IsZero() bool    { return d.raw == "" }

func (d Date) String() string {
	if d.valid {
		return d.t.Format(dateLayout)
	}
	return d.raw
}

// Before and After compare calendar order; both dates must be valid.
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }

func (d Date) MarshalYAML() (any, error) {
	return d.String(), nil
}

func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		*d = Date{raw: "<non-scalar>"}
		return nil
	}
	parsed, err := ParseDate(value.Value)
	if err != nil {
		// Defer the format complaint to validation.
		*d = Date{raw: value.Value}
		return nil
	}
	*d = parsed
	return nil
}
