package normalizer

import (
	"sort"

	"github.com/erraggy/oascomponents/internal/schemautil"
)

// TypeTable maps a field name to its canonical primitive type.
//
// Once a non-object type is recorded for a name it is never replaced by
// "object"; "object" is never recorded as a first-seen type.
type TypeTable map[string]string

// Names returns the names in the table in sorted order.
func (t TypeTable) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// reduceType folds one more observed type tag into the current state of a
// name. ok reports whether a type is recorded.
func reduceType(current string, ok bool, next string) (string, bool) {
	switch {
	case !ok && next != schemautil.TypeObject:
		return next, true
	case ok && current == schemautil.TypeObject && next != schemautil.TypeObject:
		return next, true
	default:
		return current, ok
	}
}

// ResolveTypes computes the canonical type of every field name across all
// property groups. Nodes without a string type tag are skipped.
func ResolveTypes(groups []map[string]any) TypeTable {
	table := make(TypeTable)
	for _, group := range groups {
		for _, name := range sortedKeys(group) {
			node, ok := group[name].(map[string]any)
			if !ok {
				continue
			}
			next, ok := schemautil.TypeTag(node)
			if !ok {
				continue
			}
			current, recorded := table[name]
			if resolved, keep := reduceType(current, recorded, next); keep {
				table[name] = resolved
			}
		}
	}
	return table
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
