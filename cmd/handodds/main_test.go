package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = "../../examples/decks.hcl"

func TestCompareRendersEveryDeck(t *testing.T) {
	var buf bytes.Buffer
	cmd := &CompareCmd{File: sampleConfig}
	require.NoError(t, cmd.Run(context.Background(), &Globals{NoColor: true}, &buf))

	out := buf.String()
	assert.Contains(t, out, "Analyzer: Three Starters. Cards: 40. Hand Size: 5.")
	assert.Contains(t, out, "Analyzer: Six Starters. Cards: 40.")
	assert.Contains(t, out, "Starter + Extender")
	assert.NotContains(t, out, "\x1b[")
}

func TestCompareSequentialMatchesParallel(t *testing.T) {
	var parallel, sequential bytes.Buffer
	require.NoError(t, (&CompareCmd{File: sampleConfig}).Run(context.Background(), &Globals{NoColor: true}, &parallel))
	require.NoError(t, (&CompareCmd{File: sampleConfig, Sequential: true}).Run(context.Background(), &Globals{NoColor: true}, &sequential))

	// Only the elapsed footer may differ.
	p, _, _ := strings.Cut(parallel.String(), "categories in")
	s, _, _ := strings.Cut(sequential.String(), "categories in")
	assert.Equal(t, p, s)
}

func TestCompareFiltersDecks(t *testing.T) {
	var buf bytes.Buffer
	cmd := &CompareCmd{File: sampleConfig, Decks: []string{"Six Starters"}}
	require.NoError(t, cmd.Run(context.Background(), &Globals{NoColor: true}, &buf))
	assert.Contains(t, buf.String(), "Analyzer: Six Starters.")
	assert.NotContains(t, buf.String(), "Analyzer: Three Starters.")

	err := (&CompareCmd{File: sampleConfig, Decks: []string{"Missing"}}).Run(context.Background(), &Globals{}, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Missing"`)
}

func TestCompareNeedsCategories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decks.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
deck "Solo" {
  hand_size = 2
  group "A" {
    size = 4
  }
}
`), 0o600))

	err := (&CompareCmd{File: path}).Run(context.Background(), &Globals{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no categories")
}

func TestShapes(t *testing.T) {
	var buf bytes.Buffer
	cmd := &ShapesCmd{File: sampleConfig, Deck: "Three Starters", Sort: "probability"}
	require.NoError(t, cmd.Run(&Globals{}, &buf))

	out := buf.String()
	assert.Contains(t, out, "shape")
	assert.Contains(t, out, "total 100.00%")

	err := (&ShapesCmd{File: sampleConfig, Deck: "Nope"}).Run(&Globals{}, &buf)
	require.Error(t, err)
}

func TestCheck(t *testing.T) {
	var buf bytes.Buffer
	cmd := &CheckCmd{Files: []string{sampleConfig, "../../examples/decks.yaml"}}
	require.NoError(t, cmd.Run(context.Background(), &Globals{}, &buf))

	out := buf.String()
	assert.Contains(t, out, "decks.hcl: 3 decks")
	assert.Contains(t, out, "decks.yaml: 2 decks, 3 categories")
	assert.Contains(t, out, "whole space 100.00%")
}
