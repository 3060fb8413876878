// Package schemautil provides helpers for schema nodes held as generic
// mappings (map[string]any).
//
// A schema node carries an optional `type` tag and optional nested
// `properties` or `items`. Nodes with either of those are composite, all
// others are scalar. A node carrying `$ref` is a reference token.
package schemautil

// RefPrefix is the JSON pointer prefix of shared schema definitions.
const RefPrefix = "#/components/schemas/"

// TypeObject is the type tag treated as "unresolved" by type resolution.
const TypeObject = "object"

// TypeTag returns the string `type` tag of node. Sequence-valued tags
// (OAS 3.1 `type: [string, "null"]`) do not count as a tag.
func TypeTag(node map[string]any) (string, bool) {
	if node == nil {
		return "", false
	}
	t, ok := node["type"].(string)
	if !ok || t == "" {
		return "", false
	}
	return t, true
}

// IsComposite reports whether node carries `properties` or `items`.
func IsComposite(node map[string]any) bool {
	if node == nil {
		return false
	}
	if v, ok := node["properties"]; ok && v != nil {
		return true
	}
	if v, ok := node["items"]; ok && v != nil {
		return true
	}
	return false
}

// IsRef reports whether node is a reference token.
func IsRef(node map[string]any) bool {
	if node == nil {
		return false
	}
	_, ok := node["$ref"]
	return ok
}

// RefTo returns the reference token for the shared definition name.
func RefTo(name string) map[string]any {
	return map[string]any{"$ref": RefPrefix + name}
}
