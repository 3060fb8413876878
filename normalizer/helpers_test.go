package normalizer

// obj keeps literal document trees readable in tests.
type obj = map[string]any

func ref(name string) obj {
	return obj{"$ref": "#/components/schemas/" + name}
}
