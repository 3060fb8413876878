package schemautil

import (
	"hash"
	"hash/fnv"
	"math"
	"slices"
	"strconv"
)

// Hash computes a structural hash of a generic node. Mapping keys are
// hashed in sorted order, so equal nodes hash equally regardless of the
// order they were decoded in.
// Note: Hash collisions are possible; use Equal to verify equivalence.
func Hash(v any) uint64 {
	h := fnv.New64a()
	hashValue(h, v)
	return h.Sum64()
}

// CountShapes returns the number of structurally distinct nodes in nodes.
func CountShapes(nodes []map[string]any) int {
	buckets := make(map[uint64][]map[string]any)
	count := 0
	for _, n := range nodes {
		key := Hash(n)
		if slices.ContainsFunc(buckets[key], func(seen map[string]any) bool { return Equal(seen, n) }) {
			continue
		}
		buckets[key] = append(buckets[key], n)
		count++
	}
	return count
}

func hashValue(h hash.Hash64, v any) {
	switch t := v.(type) {
	case nil:
		writeString(h, "null")
	case bool:
		writeString(h, "bool:"+strconv.FormatBool(t))
	case float64:
		writeString(h, "num:"+strconv.FormatUint(math.Float64bits(t), 16))
	case string:
		writeString(h, "str:"+t)
	case []any:
		writeString(h, "seq:"+strconv.Itoa(len(t)))
		for _, item := range t {
			hashValue(h, item)
		}
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		writeString(h, "map:"+strconv.Itoa(len(keys)))
		for _, k := range keys {
			writeString(h, k)
			hashValue(h, t[k])
		}
	default:
		writeString(h, "other")
	}
}

func writeString(h hash.Hash64, s string) {
	_, _ = h.Write([]byte(s))
	_, _ = h.Write([]byte{0})
}
