package normalizer

import (
	"context"

	"github.com/erraggy/oascomponents/internal/schemautil"
)

// collectGroups returns a copy of every property group of doc in
// discovery order. Later rewrites of doc never affect the copies.
func (n *Normalizer) collectGroups(ctx context.Context, doc map[string]any) ([]map[string]any, error) {
	groups, err := n.evaluator().CollectProperties(ctx, doc)
	if err != nil {
		return nil, err
	}
	copies := make([]map[string]any, len(groups))
	for i, g := range groups {
		copies[i] = schemautil.CopyNode(g)
	}
	n.log().Debug("collected property groups", "count", len(copies))
	return copies, nil
}
