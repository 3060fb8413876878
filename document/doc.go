// Package document loads and writes API description documents.
//
// Documents are handled as generic trees (map[string]any, []any and JSON
// scalars) rather than typed OpenAPI structures, so that every `properties`
// mapping at any depth can be found and rewritten in place.
//
// The encoding is selected by file extension (.json, .yaml, .yml) and
// falls back to content sniffing. YAML values are normalized to the JSON
// value model on load so that both encodings compare identically.
//
//	doc, format, err := document.Load("openapi.yaml")
//	if errors.Is(err, oaserrors.ErrNotFound) {
//	    // report and stop
//	}
//	schemas := document.Schemas(doc) // components.schemas, created if absent
//	err = document.Write("out.yaml", doc, format)
package document
