// Package normalizer hoists repeated property definitions of an API
// description document into shared components and replaces literal
// identifiers in path templates with named placeholders.
//
// # Overview
//
// A run walks the document once to collect every `properties` mapping
// (a property group) at any depth. From those groups it derives:
//
//   - a canonical type per field name (see [ResolveTypes]); a non-object
//     type beats "object" and is never reverted
//   - the list of shapes observed per field name (see [CollectVariants]),
//     deep-merged into one definition per name
//   - a hoisting worklist (see [Sequence]) that schedules composite names
//     (with `properties` or `items`) before scalar names
//
// Each worklist entry then rewrites every structurally matching inline
// occurrence to {"$ref": "#/components/schemas/<name>"} and stores the
// merged definition under components.schemas. Reference tokens are never
// treated as shapes, so normalizing an already normalized document adds
// nothing.
//
// Path templates are rewritten independently: "/users/1a2b/orders/42"
// becomes "/users/{id_0}/orders/{id_1}", summaries are updated and every
// operation of the path gains the matching required path parameters.
//
// # Usage
//
//	result, err := normalizer.NormalizeWithOptions(ctx,
//	    normalizer.WithFilePath("openapi.yaml"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, h := range result.Hoists {
//	    fmt.Printf("%s (%s): %d occurrences\n", h.Name, h.Kind, h.Occurrences)
//	}
//
// A field name is hoisted once it occurs at least [DefaultMinOccurrences]
// times; [WithMinOccurrences](1) hoists every field name.
package normalizer
