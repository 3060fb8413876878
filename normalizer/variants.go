package normalizer

import (
	"github.com/erraggy/oascomponents/internal/mergeutil"
	"github.com/erraggy/oascomponents/internal/schemautil"
)

// Variants holds, per field name, every schema node observed for it in
// discovery order. Reference tokens and non-mapping values are not
// variants.
type Variants struct {
	order []string
	nodes map[string][]map[string]any
}

// CollectVariants builds the variant list of every field name. Groups are
// visited in order and fields within a group in sorted order, so the
// result is reproducible run to run.
func CollectVariants(groups []map[string]any) *Variants {
	v := &Variants{nodes: make(map[string][]map[string]any)}
	for _, group := range groups {
		for _, name := range sortedKeys(group) {
			node, ok := group[name].(map[string]any)
			if !ok || schemautil.IsRef(node) {
				continue
			}
			if _, seen := v.nodes[name]; !seen {
				v.order = append(v.order, name)
			}
			v.nodes[name] = append(v.nodes[name], node)
		}
	}
	return v
}

// Names returns every field name in order of first discovery.
func (v *Variants) Names() []string {
	return v.order
}

// Nodes returns the variants of name in discovery order.
func (v *Variants) Nodes(name string) []map[string]any {
	return v.nodes[name]
}

// Count returns the number of variants observed for name.
func (v *Variants) Count(name string) int {
	return len(v.nodes[name])
}

// First returns the first-discovered variant of name, or nil.
func (v *Variants) First(name string) map[string]any {
	if nodes := v.nodes[name]; len(nodes) > 0 {
		return nodes[0]
	}
	return nil
}

// Last returns the last-discovered variant of name, or nil.
func (v *Variants) Last(name string) map[string]any {
	if nodes := v.nodes[name]; len(nodes) > 0 {
		return nodes[len(nodes)-1]
	}
	return nil
}

// Merged deep-merges every variant of name in discovery order, later
// variants winning. An unknown name yields an empty mapping.
func (v *Variants) Merged(name string) (map[string]any, error) {
	return mergeutil.MergeAll(v.nodes[name]...)
}
