package source

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.md", "second")
	writeFile(t, dir, "a.md", "first")
	writeFile(t, dir, "nested/c.markdown", "third")
	writeFile(t, dir, "notes.txt", "ignored")
	writeFile(t, dir, ".hidden.md", "ignored")
	writeFile(t, dir, ".git/d.md", "ignored")

	docs, err := ScanDir(dir)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, filepath.Join(dir, "a.md"), docs[0].Ref)
	assert.Equal(t, "first", string(docs[0].Data))
	assert.Equal(t, filepath.Join(dir, "b.md"), docs[1].Ref)
	assert.Equal(t, filepath.Join(dir, "nested", "c.markdown"), docs[2].Ref)
}

func TestScanDir_Missing(t *testing.T) {
	_, err := ScanDir(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "doc.md", "content")

	doc, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Ref)
	assert.Equal(t, "content", string(doc.Data))
}

func TestIsMarkdown(t *testing.T) {
	assert.True(t, IsMarkdown("a.md"))
	assert.True(t, IsMarkdown("a.MD"))
	assert.True(t, IsMarkdown("a.markdown"))
	assert.False(t, IsMarkdown("a.txt"))
	assert.False(t, IsMarkdown("md"))
}

func TestWatcher_WriteAndRemove(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	path := writeFile(t, dir, "doc.md", "content")

	ev := waitEvent(t, w)
	assert.Equal(t, path, ev.Ref)
	assert.False(t, ev.Removed)

	require.NoError(t, os.Remove(path))
	for {
		ev = waitEvent(t, w)
		if ev.Removed {
			break
		}
	}
	assert.Equal(t, path, ev.Ref)
}

func TestWatcher_IgnoresNonMarkdown(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	writeFile(t, dir, "notes.txt", "content")
	path := writeFile(t, dir, "doc.md", "content")

	ev := waitEvent(t, w)
	assert.Equal(t, path, ev.Ref)
}

func waitEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case ev, ok := <-w.Events():
		require.True(t, ok, "watcher closed")
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watch event")
		return Event{}
	}
}
