// Package oascomponents hoists repeated inline property definitions of
// OpenAPI-style documents into shared components and normalizes path
// templates.
//
// # Overview
//
// Hand-written and generated API descriptions often declare the same
// field again and again: a "price" under every response, an "address"
// object copied into three request bodies. oascomponents finds every
// `properties` group in a document, merges the shapes seen for each field
// name into one definition under components.schemas, and replaces the
// inline copies with $ref pointers. Path templates carrying literal
// identifiers ("/users/1a2b/orders/42") are rewritten with placeholders
// ("/users/{id_0}/orders/{id_1}") and the matching path parameters are
// declared on every operation.
//
// The library consists of the following packages:
//
//   - normalizer: discovery, type resolution, merging and substitution
//   - document: loading and writing JSON or YAML documents as generic trees
//   - oaserrors: structured error types shared by all packages
//
// # Quick Start
//
//	import "github.com/erraggy/oascomponents/normalizer"
//
//	result, err := normalizer.NormalizeWithOptions(ctx,
//		normalizer.WithFilePath("openapi.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("hoisted %d definitions\n", len(result.Hoists))
//	err = document.Write("openapi.normalized.yaml", result.Document, result.SourceFormat)
//
// # Command-Line Tool
//
// The oascomponents command wraps the library:
//
//	oascomponents normalize -o output.json input.json
//	oascomponents inspect openapi.yaml
//	oascomponents mcp
//
// Run 'oascomponents help' for the full list of commands.
package oascomponents
