package tour

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTour = `
name: Getting started
tags: [demo]
steps:
  - title: "Welcome"
    content: "An intro bubble with keys the interpreter ignores."
  - title: "Open the tool panel"
    preclick:
      - "#tool-panel-toggle"
    element: "#tool-search-input"
    textinsert: "paste1"
  - title: "Run it"
    postclick:
      - "#execute"
      - "#confirm"
`

func TestParse_IgnoresUnknownKeys(t *testing.T) {
	script, err := Parse([]byte(sampleTour))
	require.NoError(t, err)
	require.Len(t, script.Steps, 3)

	assert.Equal(t, "Welcome", script.Steps[0].Title)
	assert.Empty(t, script.Steps[0].Preclick)

	assert.Equal(t, []string{"#tool-panel-toggle"}, script.Steps[1].Preclick)
	assert.Equal(t, "#tool-search-input", script.Steps[1].Element)
	assert.Equal(t, "paste1", script.Steps[1].TextInsert)

	assert.Equal(t, []string{"#execute", "#confirm"}, script.Steps[2].Postclick)
}

func TestLoad_FromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tour.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTour), 0o644))

	script, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, script.Steps, 3)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("steps: {not: a list}"))
	assert.Error(t, err)
}
