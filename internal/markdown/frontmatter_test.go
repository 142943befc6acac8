package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testMeta struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags,omitempty"`
	LastUpdated string   `yaml:"lastUpdated,omitempty"`
}

func TestParse_AllFields(t *testing.T) {
	input := `---
name: "Vite Starter"
description: "A starter template."
tags:
  - react
  - vite
lastUpdated: "2024-06-01"
---

This is the body.
`
	meta, body, err := Parse[testMeta](strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "Vite Starter", meta.Name)
	assert.Equal(t, "A starter template.", meta.Description)
	assert.Equal(t, []string{"react", "vite"}, meta.Tags)
	assert.Equal(t, "2024-06-01", meta.LastUpdated)
	assert.Equal(t, "This is the body.", body)
}

func TestParse_FlowSequenceTags(t *testing.T) {
	input := "---\nname: \"X\"\ntags: [\"react\", \"typescript\"]\n---\n"
	meta, _, err := Parse[testMeta](strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"react", "typescript"}, meta.Tags)
}

func TestParse_EmptyBody(t *testing.T) {
	input := `---
name: "Empty"
description: "No body."
---
`
	meta, body, err := Parse[testMeta](strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "Empty", meta.Name)
	assert.Equal(t, "", body)
}

func TestParse_WhitespaceOnlyBody(t *testing.T) {
	input := "---\nname: \"X\"\n---\n\n   \n"
	_, body, err := Parse[testMeta](strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "", body)
}

func TestParse_NoFrontmatter(t *testing.T) {
	_, _, err := Parse[testMeta](strings.NewReader("Just some plain markdown."))
	assert.Error(t, err)
}

func TestParse_DelimiterNotAtStart(t *testing.T) {
	input := "intro text\n---\nname: \"X\"\n---\n"
	_, _, err := Parse[testMeta](strings.NewReader(input))
	assert.Error(t, err)
}

func TestParse_MalformedYAML(t *testing.T) {
	input := "---\n{{invalid yaml\n---\n"
	_, _, err := Parse[testMeta](strings.NewReader(input))
	assert.Error(t, err)
}

func TestParse_IntoRawMap(t *testing.T) {
	input := "---\nname: \"X\"\nextraField: 42\n---\nbody\n"
	meta, body, err := Parse[map[string]any](strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "X", meta["name"])
	assert.Equal(t, 42, meta["extraField"])
	assert.Equal(t, "body", body)
}

func TestMarshal_RoundTrip(t *testing.T) {
	original := testMeta{
		Name:        "Round Trip",
		Description: "Serialized and parsed back.",
		Tags:        []string{"react"},
		LastUpdated: "2024-06-01",
	}
	body := "Some body content."

	data, err := Marshal(original, body)
	require.NoError(t, err)

	parsed, parsedBody, err := Parse[testMeta](strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
	assert.Equal(t, body, parsedBody)
}

func TestMarshal_PreservesBody(t *testing.T) {
	body := "Line 1\n\n```go\nfunc main() {}\n```\n\n**Bold** and *italic*"
	meta := testMeta{Name: "Code", Description: "d"}
	data, err := Marshal(meta, body)
	require.NoError(t, err)

	_, parsedBody, err := Parse[testMeta](strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Equal(t, body, parsedBody)
}
