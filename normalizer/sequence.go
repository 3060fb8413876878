package normalizer

import (
	"sort"

	"github.com/erraggy/oascomponents/internal/schemautil"
)

// Kind classifies a schema node by shape.
type Kind int

const (
	// KindComposite is a node with `properties` or `items`.
	KindComposite Kind = iota
	// KindScalar is any other node.
	KindScalar
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if k == KindComposite {
		return "composite"
	}
	return "scalar"
}

func classify(node map[string]any) Kind {
	if schemautil.IsComposite(node) {
		return KindComposite
	}
	return KindScalar
}

// WorkItem is one field name scheduled for hoisting.
type WorkItem struct {
	// Name is the field name and the shared definition name.
	Name string
	// Node is the representative shape matched against the document.
	Node map[string]any
	// Kind is the classification of the first-discovered variant.
	Kind Kind
	// Variants is the number of inline occurrences observed.
	Variants int
}

// Sequence orders the field names seen at least minOccurrences times for
// hoisting: composite names before scalar names, each class in order of
// first discovery.
//
// The representative node of a name is its value in representatives (the
// shallow merge of all property groups, i.e. the last-discovered shape)
// unless that value is missing or a reference token, in which case the
// last-discovered variant is used. Nodes are copied.
func Sequence(v *Variants, representatives map[string]any, minOccurrences int) []WorkItem {
	items := make([]WorkItem, 0, len(v.Names()))
	for _, name := range v.Names() {
		count := v.Count(name)
		if count < minOccurrences {
			continue
		}
		node, ok := representatives[name].(map[string]any)
		if !ok || schemautil.IsRef(node) {
			node = v.Last(name)
		}
		items = append(items, WorkItem{
			Name:     name,
			Node:     schemautil.CopyNode(node),
			Kind:     classify(v.First(name)),
			Variants: count,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Kind < items[j].Kind
	})
	return items
}
