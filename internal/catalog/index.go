package catalog

import (
	"sort"
	"strings"

	"github.com/rogersnm/almanac/internal/model"
)

// entryRef is the index's back-reference to a stored document: the id plus
// the metadata projection needed for ordering. Indexes never own documents.
type entryRef struct {
	id      string
	updated model.Date
}

// refLess orders bucket entries by lastUpdated descending, id ascending on
// ties, so iteration is deterministic and "most recent N" reads walk a
// bucket from the front.
func refLess(a, b entryRef) bool {
	at, bt := a.updated.Time(), b.updated.Time()
	if !at.Equal(bt) {
		return at.After(bt)
	}
	return a.id < b.id
}

// index maintains the secondary indexes over category, tags, author, and
// recency. Buckets are slices kept ordered by sorted insertion; fine for
// catalogs of this size, and removal stays linear in bucket length.
// Like store, it relies on the facade's lock.
type index struct {
	byCategory map[string][]entryRef
	byTag      map[string][]entryRef
	byAuthor   map[string][]entryRef
	recency    []entryRef
}

func newIndex() *index {
	return &index{
		byCategory: make(map[string][]entryRef),
		byTag:      make(map[string][]entryRef),
		byAuthor:   make(map[string][]entryRef),
	}
}

// normalizeKey folds an index key for lookup: trimmed and lowercased.
// Category values stay otherwise opaque; no semantic unification across
// languages is attempted.
func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// reindex reconciles index membership after a store mutation. Old
// memberships are removed first, then new ones added, even when the keys
// are unchanged.
func (ix *index) reindex(old, next *model.Document) error {
	if old != nil {
		if err := ix.remove(old); err != nil {
			return err
		}
	}
	if next != nil {
		ix.add(next)
	}
	return nil
}

func (ix *index) add(doc *model.Document) {
	ref := entryRef{id: doc.ID, updated: doc.Meta.LastUpdated}
	category := normalizeKey(doc.Meta.Category)
	ix.byCategory[category] = insertRef(ix.byCategory[category], ref)
	for _, tag := range doc.Meta.Tags {
		key := normalizeKey(tag)
		ix.byTag[key] = insertRef(ix.byTag[key], ref)
	}
	author := normalizeKey(doc.Meta.Author)
	ix.byAuthor[author] = insertRef(ix.byAuthor[author], ref)
	ix.recency = insertRef(ix.recency, ref)
}

func (ix *index) remove(doc *model.Document) error {
	if !removeFromBucket(ix.byCategory, normalizeKey(doc.Meta.Category), doc.ID) {
		return &IndexConsistencyError{ID: doc.ID, Bucket: "category:" + normalizeKey(doc.Meta.Category)}
	}
	for _, tag := range doc.Meta.Tags {
		key := normalizeKey(tag)
		if !removeFromBucket(ix.byTag, key, doc.ID) {
			return &IndexConsistencyError{ID: doc.ID, Bucket: "tag:" + key}
		}
	}
	if !removeFromBucket(ix.byAuthor, normalizeKey(doc.Meta.Author), doc.ID) {
		return &IndexConsistencyError{ID: doc.ID, Bucket: "author:" + normalizeKey(doc.Meta.Author)}
	}
	var removed bool
	ix.recency, removed = removeRef(ix.recency, doc.ID)
	if !removed {
		return &IndexConsistencyError{ID: doc.ID, Bucket: "recency"}
	}
	return nil
}

func (ix *index) categoryBucket(key string) []entryRef {
	return ix.byCategory[normalizeKey(key)]
}

func (ix *index) tagBucket(key string) []entryRef {
	return ix.byTag[normalizeKey(key)]
}

func (ix *index) authorBucket(key string) []entryRef {
	return ix.byAuthor[normalizeKey(key)]
}

func (ix *index) categories() []string { return sortedKeys(ix.byCategory) }
func (ix *index) tags() []string       { return sortedKeys(ix.byTag) }
func (ix *index) authors() []string    { return sortedKeys(ix.byAuthor) }

func insertRef(refs []entryRef, ref entryRef) []entryRef {
	i := sort.Search(len(refs), func(i int) bool { return !refLess(refs[i], ref) })
	refs = append(refs, entryRef{})
	copy(refs[i+1:], refs[i:])
	refs[i] = ref
	return refs
}

func removeRef(refs []entryRef, id string) ([]entryRef, bool) {
	for i := range refs {
		if refs[i].id == id {
			return append(refs[:i], refs[i+1:]...), true
		}
	}
	return refs, false
}

// removeFromBucket drops id from the keyed bucket, deleting the bucket when
// it empties so key listings never show dangling keys.
func removeFromBucket(m map[string][]entryRef, key, id string) bool {
	refs, ok := m[key]
	if !ok {
		return false
	}
	refs, removed := removeRef(refs, id)
	if !removed {
		return false
	}
	if len(refs) == 0 {
		delete(m, key)
	} else {
		m[key] = refs
	}
	return true
}

func sortedKeys(m map[string][]entryRef) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
