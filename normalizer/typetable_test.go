package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduceType(t *testing.T) {
	tests := []struct {
		name      string
		current   string
		recorded  bool
		next      string
		want      string
		wantKnown bool
	}{
		{"first scalar is recorded", "", false, "string", "string", true},
		{"first object is not recorded", "", false, "object", "", false},
		{"scalar replaces object", "object", true, "integer", "integer", true},
		{"object never replaces scalar", "string", true, "object", "string", true},
		{"first scalar wins", "string", true, "integer", "string", true},
		{"object stays object", "object", true, "object", "object", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, known := reduceType(tt.current, tt.recorded, tt.next)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantKnown, known)
		})
	}
}

func TestResolveTypes(t *testing.T) {
	groups := []map[string]any{
		{"id": obj{"type": "object"}, "name": obj{"type": "string"}, "tags": obj{"type": "array", "items": obj{}}},
		{"id": obj{"type": "string"}, "name": obj{"type": "object"}},
		{"id": obj{"type": "object"}, "meta": obj{"type": "object"}},
		{"age": obj{"description": "no type tag"}, "bad": "not a node"},
		{"nullable": obj{"type": []any{"string", "null"}}},
	}

	table := ResolveTypes(groups)

	assert.Equal(t, TypeTable{"id": "string", "name": "string", "tags": "array"}, table)
	assert.Equal(t, []string{"id", "name", "tags"}, table.Names())
}

func TestResolveTypes_Monotonic(t *testing.T) {
	// Whatever follows, a resolved non-object type survives.
	groups := []map[string]any{{"price": obj{"type": "number"}}}
	for range 5 {
		groups = append(groups, map[string]any{"price": obj{"type": "object"}})
	}
	assert.Equal(t, "number", ResolveTypes(groups)["price"])
}

func TestResolveTypes_Empty(t *testing.T) {
	assert.Empty(t, ResolveTypes(nil))
	assert.Empty(t, TypeTable{}.Names())
}
