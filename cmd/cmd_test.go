package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rogersnm/almanac/internal/catalog"
	"github.com/rogersnm/almanac/internal/config"
	"github.com/rogersnm/almanac/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T) (catalogDir string) {
	t.Helper()
	dataDir = t.TempDir()
	catalogFlag = t.TempDir()
	cfg = &config.Config{}
	return catalogFlag
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func writeExample(t *testing.T, dir, file, name, category string, updated string) string {
	t.Helper()
	path := filepath.Join(dir, file)
	content := fmt.Sprintf(`---
name: %q
description: "An example document."
category: %q
author: "jane"
tags: ["react"]
lastUpdated: %q
---
# Body
`, name, category, updated)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// Tests exercise commands end to end against a temp catalog directory.
// Cobra keeps flag values between runs, so each test passes its flags
// explicitly.

func TestIngest_CopiesIntoCatalog(t *testing.T) {
	dir := setupEnv(t)
	src := writeExample(t, t.TempDir(), "react-app.md", "React App", "Frontend Framework", "2024-06-01")

	require.NoError(t, run(t, "ingest", src))
	assert.FileExists(t, filepath.Join(dir, "react-app.md"))
}

func TestIngest_RejectsInvalid(t *testing.T) {
	setupEnv(t)
	bad := filepath.Join(t.TempDir(), "bad.md")
	require.NoError(t, os.WriteFile(bad, []byte("---\nname: \"X\"\n---\n"), 0644))

	assert.Error(t, run(t, "ingest", bad))
}

func TestValidate_ReportsFailures(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()
	writeExample(t, dir, "good.md", "Good", "CLI Tool", "2024-06-01")
	bad := filepath.Join(dir, "bad.md")
	require.NoError(t, os.WriteFile(bad, []byte("no frontmatter"), 0644))

	assert.Error(t, run(t, "validate", dir))
	assert.NoError(t, run(t, "validate", filepath.Join(dir, "good.md")))
}

func TestList(t *testing.T) {
	dir := setupEnv(t)
	writeExample(t, dir, "a.md", "A", "CLI Tool", "2024-06-01")
	writeExample(t, dir, "b.md", "B", "CLI Tool", "2024-05-01")

	require.NoError(t, run(t, "list"))
}

func TestCategoriesAndTags(t *testing.T) {
	dir := setupEnv(t)
	writeExample(t, dir, "a.md", "A", "Backend Service", "2024-06-01")

	require.NoError(t, run(t, "categories"))
	require.NoError(t, run(t, "tags"))
	require.NoError(t, run(t, "authors"))
}

func TestSearch_CLI(t *testing.T) {
	dir := setupEnv(t)
	writeExample(t, dir, "a.md", "A", "Backend Service", "2024-06-01")
	writeExample(t, dir, "b.md", "B", "CLI Tool", "2024-05-01")

	require.NoError(t, run(t, "search", "--category", "Backend Service", "--tag", "react",
		"--from", "2024-01-01", "--to", "2024-12-31", "--sort", "recency", "--limit", "10", "--offset", "0"))
}

func TestSearch_BadDate(t *testing.T) {
	dir := setupEnv(t)
	writeExample(t, dir, "a.md", "A", "CLI Tool", "2024-06-01")

	err := run(t, "search", "--from", "June 2024", "--to", "", "--category", "", "--tag", "", "--limit", "0", "--offset", "0")
	var ferr *catalog.InvalidFilterError
	require.ErrorAs(t, err, &ferr)
}

func TestShow_NotFound(t *testing.T) {
	setupEnv(t)
	assert.Error(t, run(t, "show", "missing"))
}

func TestRemove_Force(t *testing.T) {
	dir := setupEnv(t)
	path := writeExample(t, dir, "a.md", "A", "CLI Tool", "2024-06-01")

	require.NoError(t, run(t, "remove", "a", "--force"))
	assert.NoFileExists(t, path)
}

func TestRefresh(t *testing.T) {
	dir := setupEnv(t)
	writeExample(t, dir, "a.md", "A", "CLI Tool", "2024-06-01")

	require.NoError(t, run(t, "refresh", "a"))
}

func TestWatchEvent_RemovesExplicitSlugDocument(t *testing.T) {
	dir := setupEnv(t)
	path := filepath.Join(dir, "doc.md")
	content := `---
name: "Doc"
description: "An example document."
category: "CLI Tool"
author: "jane"
tags: ["go"]
lastUpdated: "2024-06-01"
slug: "custom-id"
---
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cat, _, err := loadCatalog()
	require.NoError(t, err)
	require.Equal(t, 1, cat.Len())

	// Eviction must find the document even though its id does not match
	// the file name.
	handleWatchEvent(cat, source.Event{Ref: path, Removed: true})
	assert.Equal(t, 0, cat.Len())
}

func TestCatalogSetDefault(t *testing.T) {
	dir := setupEnv(t)

	require.NoError(t, run(t, "catalog", "set-default", dir))

	c, err := config.Load(dataDir)
	require.NoError(t, err)
	assert.Equal(t, dir, c.DefaultCatalog)
}

func TestCatalogStatus(t *testing.T) {
	dir := setupEnv(t)
	writeExample(t, dir, "a.md", "A", "CLI Tool", "2024-06-01")

	require.NoError(t, run(t, "catalog", "status"))
}
