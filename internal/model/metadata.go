package model

// Metadata is the structured frontmatter record carried by every example
// document in the catalog. Extra holds unrecognized fields so unknown keys
// survive a round-trip instead of being rejected.
type Metadata struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Category    string         `yaml:"category"`
	Author      string         `yaml:"author"`
	AuthorURL   string         `yaml:"authorUrl,omitempty"`
	Tags        []string       `yaml:"tags"`
	LastUpdated Date           `yaml:"lastUpdated"`
	Extra       map[string]any `yaml:",inline"`
}

// Raw is the untyped form of a frontmatter block as the parser hands it
// over. The validator owns turning it into a Metadata.
type Raw map[string]any
