package catalog

import (
	"testing"

	"github.com/rogersnm/almanac/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func refDoc(id, category, author string, tags []string, updated string) *model.Document {
	return &model.Document{
		ID: id,
		Meta: model.Metadata{
			Name:        id,
			Description: "d",
			Category:    category,
			Author:      author,
			Tags:        tags,
			LastUpdated: model.MustDate(updated),
		},
	}
}

func TestIndex_AddOrdersByRecency(t *testing.T) {
	ix := newIndex()
	ix.add(refDoc("old", "X", "u", []string{"t"}, "2023-01-01"))
	ix.add(refDoc("new", "X", "u", []string{"t"}, "2024-06-01"))
	ix.add(refDoc("mid", "X", "u", []string{"t"}, "2024-01-01"))

	var ids []string
	for _, r := range ix.recency {
		ids = append(ids, r.id)
	}
	assert.Equal(t, []string{"new", "mid", "old"}, ids)
}

func TestIndex_TieBrokenByID(t *testing.T) {
	ix := newIndex()
	ix.add(refDoc("b", "X", "u", []string{"t"}, "2024-01-01"))
	ix.add(refDoc("a", "X", "u", []string{"t"}, "2024-01-01"))
	ix.add(refDoc("c", "X", "u", []string{"t"}, "2024-01-01"))

	var ids []string
	for _, r := range ix.categoryBucket("X") {
		ids = append(ids, r.id)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestIndex_ReindexMovesBuckets(t *testing.T) {
	ix := newIndex()
	old := refDoc("doc", "Frontend", "jane", []string{"react", "vite"}, "2024-01-01")
	ix.add(old)

	updated := refDoc("doc", "Backend", "jane", []string{"go"}, "2024-02-01")
	require.NoError(t, ix.reindex(old, updated))

	assert.Empty(t, ix.categoryBucket("Frontend"))
	assert.Len(t, ix.categoryBucket("Backend"), 1)
	assert.Empty(t, ix.tagBucket("react"))
	assert.Empty(t, ix.tagBucket("vite"))
	assert.Len(t, ix.tagBucket("go"), 1)
	assert.Len(t, ix.recency, 1)
}

func TestIndex_RemoveMissingMembership(t *testing.T) {
	ix := newIndex()
	err := ix.remove(refDoc("ghost", "X", "u", []string{"t"}, "2024-01-01"))

	var icerr *IndexConsistencyError
	require.ErrorAs(t, err, &icerr)
	assert.Equal(t, "ghost", icerr.ID)
}

func TestIndex_EmptyBucketsPruned(t *testing.T) {
	ix := newIndex()
	doc := refDoc("doc", "X", "u", []string{"t"}, "2024-01-01")
	ix.add(doc)
	require.NoError(t, ix.remove(doc))

	assert.Empty(t, ix.categories())
	assert.Empty(t, ix.tags())
	assert.Empty(t, ix.authors())
}

func TestIndex_KeyListingsSorted(t *testing.T) {
	ix := newIndex()
	ix.add(refDoc("a", "Zeta", "u2", []string{"beta"}, "2024-01-01"))
	ix.add(refDoc("b", "Alpha", "u1", []string{"alpha"}, "2024-01-02"))

	assert.Equal(t, []string{"alpha", "zeta"}, ix.categories())
	assert.Equal(t, []string{"alpha", "beta"}, ix.tags())
	assert.Equal(t, []string{"u1", "u2"}, ix.authors())
}
