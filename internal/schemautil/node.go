package schemautil

import "github.com/google/go-cmp/cmp"

// DeepCopy returns a copy of v sharing no mappings or sequences with it.
func DeepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return CopyNode(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = DeepCopy(item)
		}
		return out
	default:
		return v
	}
}

// CopyNode deep-copies a mapping. A nil mapping stays nil.
func CopyNode(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, item := range m {
		out[k] = DeepCopy(item)
	}
	return out
}

// Equal reports whether a and b are structurally equal. Mapping key order
// never matters; sequence order does.
func Equal(a, b any) bool {
	return cmp.Equal(a, b)
}

// RetagAsObject returns a copy of v in which every string `type` tag equal
// to typ is replaced by "object".
func RetagAsObject(v any, typ string) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			if k == "type" && item == typ {
				out[k] = TypeObject
				continue
			}
			out[k] = RetagAsObject(item, typ)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = RetagAsObject(item, typ)
		}
		return out
	default:
		return v
	}
}
