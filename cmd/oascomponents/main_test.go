package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Typos within edit distance 2
		{"normalise", "normalize"},
		{"normalze", "normalize"},
		{"inspct", "inspect"},
		{"insepct", "inspect"},
		{"mpc", "mcp"},
		{"versio", "version"},
		{"hep", "help"},

		// Too far: no suggestion
		{"xyz", ""},
		{"foobar", ""},
		{"denormalization", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, suggestCommand(tt.input))
		})
	}
}

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 0, levenshtein("mcp", "mcp"))
	assert.Equal(t, 3, levenshtein("", "mcp"))
	assert.Equal(t, 1, levenshtein("help", "hel"))
	assert.Equal(t, 2, levenshtein("mpc", "mcp"))
}

func TestRun(t *testing.T) {
	assert.Equal(t, 0, run([]string{"help"}))
	assert.Equal(t, 0, run([]string{"version"}))
	assert.Equal(t, 1, run([]string{"bogus"}))
	assert.Equal(t, 0, run([]string{"normalize", "--help"}))
	assert.Equal(t, 1, run([]string{"inspect", "a.json", "b.json"}))
}

func TestRun_DefaultCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	// No input.json: reported, not a failure.
	assert.Equal(t, 0, run(nil))
	_, err := os.Stat(filepath.Join(dir, "output.json"))
	assert.True(t, os.IsNotExist(err))

	input := `{"components": {"schemas": {
		"A": {"properties": {"price": {"type": "number"}}},
		"B": {"properties": {"price": {"type": "number"}}}
	}}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "input.json"), []byte(input), 0o600))

	assert.Equal(t, 0, run([]string{"-q"}))
	data, err := os.ReadFile(filepath.Join(dir, "output.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"$ref": "#/components/schemas/price"`)
}
