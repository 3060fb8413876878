// Package mergeutil deep-merges schema nodes.
//
// Merging uses JSON Merge Patch (RFC 7386): mappings merge key-wise and
// recursively, the later value wins on any other conflict, and sequences
// are replaced as opaque values. Unlike RFC 7386, null is an ordinary
// value: a null in the later value overwrites the key instead of removing
// it, so fields such as `default: null` survive a merge.
package mergeutil

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
)

// Merge returns dst with src merged over it. Neither argument is modified.
// A nil dst is treated as an empty mapping.
func Merge(dst, src map[string]any) (map[string]any, error) {
	if dst == nil {
		dst = map[string]any{}
	}
	if src == nil {
		src = map[string]any{}
	}
	dstJSON, err := json.Marshal(encodeNulls(dst))
	if err != nil {
		return nil, fmt.Errorf("mergeutil: encoding target: %w", err)
	}
	srcJSON, err := json.Marshal(encodeNulls(src))
	if err != nil {
		return nil, fmt.Errorf("mergeutil: encoding source: %w", err)
	}
	merged, err := jsonpatch.MergePatch(dstJSON, srcJSON)
	if err != nil {
		return nil, fmt.Errorf("mergeutil: merging: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(merged, &out); err != nil {
		return nil, fmt.Errorf("mergeutil: decoding result: %w", err)
	}
	if out == nil {
		return map[string]any{}, nil
	}
	return decodeNulls(out).(map[string]any), nil
}

// nullMarker stands in for a null mapping value while the merge patch is
// applied, since the patch would otherwise delete the key.
const nullMarker = "\x00mergeutil:null\x00"

// encodeNulls returns a copy of v in which every null mapping value is
// replaced by nullMarker. Null sequence elements are left alone: sequences
// are never merged.
func encodeNulls(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if val == nil {
				out[k] = nullMarker
				continue
			}
			out[k] = encodeNulls(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = encodeNulls(val)
		}
		return out
	default:
		return v
	}
}

// decodeNulls reverses encodeNulls in place.
func decodeNulls(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			if s, ok := val.(string); ok && s == nullMarker {
				t[k] = nil
				continue
			}
			t[k] = decodeNulls(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = decodeNulls(val)
		}
		return t
	default:
		return v
	}
}

// MergeAll merges every node in order, later nodes winning.
func MergeAll(nodes ...map[string]any) (map[string]any, error) {
	result := map[string]any{}
	for _, n := range nodes {
		var err error
		if result, err = Merge(result, n); err != nil {
			return nil, err
		}
	}
	return result, nil
}
