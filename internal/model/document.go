package model

// Document is one validated catalog entry: metadata plus the markdown body
// that follows it. The body is opaque to the catalog.
type Document struct {
	ID        string
	Meta      Metadata
	Body      string
	SourceRef string
}

// Summary is the projection returned by queries: id and metadata, body
// excluded.
type Summary struct {
	ID   string
	Meta Metadata
}

// Clone returns a deep copy so the store never shares mutable state with
// callers.
func (d *Document) Clone() *Document {
	out := *d
	out.Meta = d.Meta.clone()
	return &out
}

func (m Metadata) clone() Metadata {
	out := m
	if m.Tags != nil {
		out.Tags = append([]string(nil), m.Tags...)
	}
	if m.Extra != nil {
		out.Extra = make(map[string]any, len(m.Extra))
		for k, v := range m.Extra {
			out.Extra[k] = v
		}
	}
	return out
}

// Summary returns the query projection of the document.
func (d *Document) Summary() Summary {
	return Summary{ID: d.ID, Meta: d.Meta.clone()}
}
