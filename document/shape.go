package document

// Schemas returns the components.schemas mapping of doc, creating
// components and components.schemas when absent or not mappings.
func Schemas(doc Document) map[string]any {
	components, ok := doc["components"].(map[string]any)
	if !ok {
		components = make(map[string]any)
		doc["components"] = components
	}
	schemas, ok := components["schemas"].(map[string]any)
	if !ok {
		schemas = make(map[string]any)
		components["schemas"] = schemas
	}
	return schemas
}

// Paths returns the paths mapping of doc. ok is false when doc has no
// paths mapping; it is never created.
func Paths(doc Document) (paths map[string]any, ok bool) {
	paths, ok = doc["paths"].(map[string]any)
	return paths, ok
}
