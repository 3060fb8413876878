package normalizer

import (
	"slices"

	"github.com/erraggy/oascomponents/document"
	"github.com/erraggy/oascomponents/internal/schemautil"
)

// matcher decides whether an inline occurrence stands for a hoisted node.
type matcher struct {
	candidates []map[string]any
}

func (m matcher) matches(v any) bool {
	node, ok := v.(map[string]any)
	if !ok || schemautil.IsRef(node) {
		return false
	}
	for _, c := range m.candidates {
		if schemautil.Equal(node, c) {
			return true
		}
	}
	return false
}

// substitute replaces, at any depth under v, every property group entry
// named name whose value m matches with a reference to the shared
// definition name. It returns the number of replacements.
func substitute(v any, name string, m matcher) int {
	count := 0
	switch t := v.(type) {
	case map[string]any:
		if group, ok := t["properties"].(map[string]any); ok {
			if val, ok := group[name]; ok && m.matches(val) {
				group[name] = schemautil.RefTo(name)
				count++
			}
		}
		for _, child := range t {
			count += substitute(child, name, m)
		}
	case []any:
		for _, child := range t {
			count += substitute(child, name, m)
		}
	}
	return count
}

// replacedEntry is a hoisted name and the node its references stand for.
type replacedEntry struct {
	name string
	node map[string]any
}

// hoister is the state of one substitution run over a document.
type hoister struct {
	doc      map[string]any
	schemas  map[string]any
	existing map[string]bool
	types    TypeTable
	variants *Variants
	registry *Registry
	replaced []replacedEntry
	log      document.Logger
}

func newHoister(doc map[string]any, types TypeTable, variants *Variants, log document.Logger) *hoister {
	schemas := document.Schemas(doc)
	existing := make(map[string]bool, len(schemas))
	for name := range schemas {
		existing[name] = true
	}
	return &hoister{
		doc:      doc,
		schemas:  schemas,
		existing: existing,
		types:    types,
		variants: variants,
		registry: newRegistry(),
		log:      log,
	}
}

// resolveNested returns a copy of node in which nested occurrences of
// every already-hoisted definition are replaced by references.
func (h *hoister) resolveNested(node map[string]any) map[string]any {
	out := schemautil.CopyNode(node)
	for _, r := range h.replaced {
		substitute(out, r.name, matcher{candidates: []map[string]any{r.node}})
	}
	return out
}

// hoist processes one work item: it rewrites every matching occurrence in
// the document to a reference and registers the merged definition.
func (h *hoister) hoist(item WorkItem) (Hoist, error) {
	name, node := item.Name, item.Node
	if canonical, ok := h.types[name]; ok {
		node["type"] = canonical
	}

	candidates := []map[string]any{node}
	if resolved := h.resolveNested(node); !schemautil.Equal(resolved, node) {
		candidates = append(candidates, resolved)
	}
	if typ, ok := schemautil.TypeTag(node); ok && typ != schemautil.TypeObject {
		for _, c := range slices.Clone(candidates) {
			candidates = append(candidates, schemautil.RetagAsObject(c, typ).(map[string]any))
		}
	}
	replacedCount := substitute(h.doc, name, matcher{candidates: candidates})

	h.replaced = append(h.replaced, replacedEntry{name: name, node: node})
	h.registry.set(name, node)

	merged, err := h.variants.Merged(name)
	if err != nil {
		return Hoist{}, err
	}
	if canonical, ok := h.types[name]; ok {
		merged["type"] = canonical
	}
	for _, r := range h.replaced {
		substitute(merged, r.name, matcher{candidates: []map[string]any{r.node}})
	}

	if h.existing[name] && !schemautil.Equal(h.schemas[name], merged) {
		h.log.Warn("replacing existing component", "name", name)
	}
	h.registry.set(name, merged)
	h.schemas[name] = merged

	typ, _ := schemautil.TypeTag(merged)
	h.log.Info("found component", "name", name, "kind", item.Kind.String(), "replaced", replacedCount)
	return Hoist{
		Name:        name,
		Kind:        item.Kind,
		Type:        typ,
		Variants:    item.Variants,
		Shapes:      schemautil.CountShapes(h.variants.Nodes(name)),
		Occurrences: replacedCount,
	}, nil
}
