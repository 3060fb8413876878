package schemautil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	a := map[string]any{"type": "string", "format": "uuid"}
	b := map[string]any{"format": "uuid", "type": "string"}
	assert.Equal(t, Hash(a), Hash(b), "key order must not matter")
	assert.NotEqual(t, Hash(a), Hash(map[string]any{"type": "string"}))
	assert.NotEqual(t, Hash([]any{"a", "b"}), Hash([]any{"b", "a"}))
	assert.NotEqual(t, Hash("1"), Hash(1.0))
	assert.NotEqual(t, Hash(nil), Hash(false))
}

func TestCountShapes(t *testing.T) {
	nodes := []map[string]any{
		{"type": "number"},
		{"type": "number"},
		{"type": "number", "minimum": 0.0},
		{"type": "string"},
	}
	assert.Equal(t, 3, CountShapes(nodes))
	assert.Equal(t, 0, CountShapes(nil))
}
