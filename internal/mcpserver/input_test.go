package mcpserver

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/erraggy/oascomponents/document"
	"github.com/erraggy/oascomponents/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallYAML = `paths:
  /pets/12:
    get:
      summary: Get pet 12
components:
  schemas:
    Pet:
      properties:
        name:
          type: string
    Owner:
      properties:
        name:
          type: string
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSpecInput_ResolveFile(t *testing.T) {
	specCache.reset()
	path := writeTemp(t, "api.yaml", smallYAML)

	spec, err := specInput{File: path}.resolve()
	require.NoError(t, err)
	assert.Equal(t, document.FormatYAML, spec.format)
	assert.Contains(t, spec.doc, "paths")
}

func TestSpecInput_ResolveContent(t *testing.T) {
	specCache.reset()

	spec, err := specInput{Content: `{"paths": {}}`}.resolve()
	require.NoError(t, err)
	assert.Equal(t, document.FormatJSON, spec.format)
	assert.Equal(t, map[string]any{"paths": map[string]any{}}, spec.doc)

	spec, err = specInput{Content: smallYAML}.resolve()
	require.NoError(t, err)
	assert.Equal(t, document.FormatYAML, spec.format)
}

func TestSpecInput_ResolveErrors(t *testing.T) {
	specCache.reset()

	_, err := specInput{}.resolve()
	assert.ErrorContains(t, err, "exactly one of file or content must be provided")

	_, err = specInput{File: "a.yaml", Content: "b: 1"}.resolve()
	assert.ErrorContains(t, err, "exactly one of file or content must be provided")

	_, err = specInput{File: filepath.Join(t.TempDir(), "missing.yaml")}.resolve()
	assert.ErrorIs(t, err, oaserrors.ErrNotFound)

	_, err = specInput{Content: "{not json"}.resolve()
	assert.ErrorIs(t, err, oaserrors.ErrParse)
}

func TestSpecInput_ContentSizeLimit(t *testing.T) {
	old := cfg.MaxInlineSize
	cfg.MaxInlineSize = 8
	t.Cleanup(func() { cfg.MaxInlineSize = old })

	_, err := specInput{Content: `{"paths": {}}`}.resolve()
	assert.ErrorContains(t, err, "exceeds maximum")
}

func TestSpecCache_HitReturnsCopy(t *testing.T) {
	specCache.reset()
	path := writeTemp(t, "api.yaml", smallYAML)

	first, err := specInput{File: path}.resolve()
	require.NoError(t, err)
	assert.Equal(t, 1, specCache.size())

	first.doc["paths"] = "clobbered"

	second, err := specInput{File: path}.resolve()
	require.NoError(t, err)
	assert.IsType(t, map[string]any{}, second.doc["paths"], "cached document must not share state with callers")
	assert.Equal(t, 1, specCache.size())
}

func TestSpecCache_EvictsOldest(t *testing.T) {
	store := &specCacheStore{entries: make(map[string]*cacheEntry), maxSize: 2}
	spec := loadedSpec{doc: map[string]any{}, format: document.FormatJSON}

	store.putWithTTL("a", spec, time.Minute)
	time.Sleep(time.Millisecond)
	store.putWithTTL("b", spec, time.Minute)
	time.Sleep(time.Millisecond)
	_, _ = store.get("a") // touch a so b is the oldest
	store.putWithTTL("c", spec, time.Minute)

	_, okA := store.get("a")
	_, okB := store.get("b")
	assert.True(t, okA)
	assert.False(t, okB)
	assert.Equal(t, 2, store.size())
}

func TestSpecCache_Expiry(t *testing.T) {
	store := &specCacheStore{entries: make(map[string]*cacheEntry), maxSize: 5}
	spec := loadedSpec{doc: map[string]any{}, format: document.FormatJSON}

	store.putWithTTL("old", spec, time.Nanosecond)
	store.putWithTTL("new", spec, time.Hour)
	time.Sleep(time.Millisecond)

	store.sweep()
	assert.Equal(t, 1, store.size())
	_, ok := store.get("old")
	assert.False(t, ok)
}

func TestMakeCacheKey(t *testing.T) {
	path := writeTemp(t, "api.json", `{}`)

	assert.Contains(t, makeCacheKey(specInput{File: path}), "file:")
	assert.Contains(t, makeCacheKey(specInput{Content: "{}"}), "content:")
	assert.Empty(t, makeCacheKey(specInput{File: filepath.Join(t.TempDir(), "nope.json")}))
	assert.Empty(t, makeCacheKey(specInput{}))
}
