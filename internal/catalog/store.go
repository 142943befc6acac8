package catalog

import "github.com/rogersnm/almanac/internal/model"

// store is the owning collection of documents, keyed by id. It copies on
// write-in and write-out so no caller retains a mutable alias to a stored
// document. It carries no lock of its own: the Catalog facade serializes
// access.
type store struct {
	docs map[string]*model.Document
}

func newStore() *store {
	return &store{docs: make(map[string]*model.Document)}
}

// put inserts or replaces by id and returns the previous version, if any,
// for the index to reconcile.
func (s *store) put(doc *model.Document) *model.Document {
	prev := s.docs[doc.ID]
	s.docs[doc.ID] = doc.Clone()
	return prev
}

// get returns a copy of the current document.
func (s *store) get(id string) (*model.Document, bool) {
	doc, ok := s.docs[id]
	if !ok {
		return nil, false
	}
	return doc.Clone(), true
}

// lookup returns the stored document without copying. Only for read paths
// inside the facade's lock that promise not to mutate.
func (s *store) lookup(id string) (*model.Document, bool) {
	doc, ok := s.docs[id]
	return doc, ok
}

// findBySource returns the id of the document ingested from ref.
func (s *store) findBySource(ref string) (string, bool) {
	for id, doc := range s.docs {
		if doc.SourceRef == ref {
			return id, true
		}
	}
	return "", false
}

// remove deletes by id and returns the removed document.
func (s *store) remove(id string) (*model.Document, bool) {
	doc, ok := s.docs[id]
	if !ok {
		return nil, false
	}
	delete(s.docs, id)
	return doc, true
}

// list returns copies of all documents in unspecified order. Callers that
// need an order go through the indexes.
func (s *store) list() []*model.Document {
	out := make([]*model.Document, 0, len(s.docs))
	for _, doc := range s.docs {
		out = append(out, doc.Clone())
	}
	return out
}

func (s *store) len() int {
	return len(s.docs)
}
