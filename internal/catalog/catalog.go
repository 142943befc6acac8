// Package catalog implements the metadata-driven document catalog: ingest
// parses and validates frontmatter-tagged markdown, the store owns
// documents, and secondary indexes answer filtered queries without full
// scans.
package catalog

import (
	"bytes"
	"sync"
	"time"

	"github.com/rogersnm/almanac/internal/markdown"
	"github.com/rogersnm/almanac/internal/model"
	"github.com/rogersnm/almanac/internal/slug"
)

// Options tunes catalog behaviour.
type Options struct {
	// Now anchors the future-date validation check; nil means time.Now.
	Now func() time.Time
	// FutureSlack is how far past today a document's lastUpdated may point
	// before it is rejected.
	FutureSlack time.Duration
}

// Catalog is the facade sequencing parse, validate, store, and index.
// An invalid document never touches the store or indexes.
//
// One RWMutex serializes mutations: Ingest and Remove hold the write lock
// over put+reindex as a single critical section, reads hold the read lock.
// All source I/O happens before the lock is taken.
type Catalog struct {
	mu    sync.RWMutex
	store *store
	index *index
	opts  Options
}

func New(opts Options) *Catalog {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Catalog{
		store: newStore(),
		index: newIndex(),
		opts:  opts,
	}
}

// Ingest parses and validates raw document text, then inserts it under an
// id derived from an explicit `slug` frontmatter field or, absent that,
// from the source reference. Re-ingesting the same id replaces the prior
// version wholesale.
func (c *Catalog) Ingest(sourceRef string, raw []byte) (string, error) {
	rawMeta, body, err := markdown.Parse[model.Raw](bytes.NewReader(raw))
	if err != nil {
		return "", &ParseError{SourceRef: sourceRef, Err: err}
	}

	meta, err := model.FromRaw(rawMeta, model.ValidateOptions{
		Now:         c.opts.Now(),
		FutureSlack: c.opts.FutureSlack,
	})
	if err != nil {
		return "", err
	}

	id, err := deriveID(meta, sourceRef)
	if err != nil {
		return "", err
	}
	doc := &model.Document{ID: id, Meta: meta, Body: body, SourceRef: sourceRef}

	c.mu.Lock()
	defer c.mu.Unlock()
	prev := c.store.put(doc)
	if err := c.index.reindex(prev, doc); err != nil {
		return "", err
	}
	return id, nil
}

// Remove deletes a document and its index memberships.
func (c *Catalog) Remove(id string) (*model.Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc, ok := c.store.remove(id)
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	if err := c.index.reindex(doc, nil); err != nil {
		return nil, err
	}
	return doc, nil
}

// Get returns a copy of the document, body included.
func (c *Catalog) Get(id string) (*model.Document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	doc, ok := c.store.get(id)
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return doc, nil
}

// FindBySource returns the id of the document ingested from ref. Ids can
// diverge from source paths when a document carries an explicit slug, so
// callers reacting to filesystem changes resolve through here.
func (c *Catalog) FindBySource(ref string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store.findBySource(ref)
}

// Search answers a filter query against a consistent store+index snapshot.
func (c *Catalog) Search(f Filter) (Result, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.runQuery(f)
}

// List returns copies of all documents in unspecified order.
func (c *Catalog) List() []*model.Document {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store.list()
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store.len()
}

// Categories lists the normalized category keys currently indexed.
func (c *Catalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.index.categories()
}

// Tags lists the normalized tag keys currently indexed.
func (c *Catalog) Tags() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.index.tags()
}

// Authors lists the normalized author keys currently indexed.
func (c *Catalog) Authors() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.index.authors()
}

func deriveID(meta model.Metadata, sourceRef string) (string, error) {
	if v, ok := meta.Extra["slug"]; ok {
		s, ok := v.(string)
		if !ok {
			return "", &model.ValidationError{Violations: []model.Violation{
				{Field: "slug", Reason: "must be a string"},
			}}
		}
		id, err := slug.Make(s)
		if err != nil {
			return "", &model.ValidationError{Violations: []model.Violation{
				{Field: "slug", Reason: "cannot derive an id from it"},
			}}
		}
		return id, nil
	}
	return slug.FromRef(sourceRef)
}
